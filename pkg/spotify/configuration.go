package spotify

import (
	"time"

	"github.com/blaubaer/silentify/pkg/common"
)

const (
	DefaultApiUrl         = "https://api.spotify.com/v1"
	DefaultAccountsUrl    = "https://accounts.spotify.com"
	DefaultRedirectUrl    = "http://127.0.0.1:8888/callback"
	DefaultRequestTimeout = 60 * time.Second
)

var Scopes = []string{
	"user-read-currently-playing",
	"user-read-playback-state",
	"user-read-email",
	"user-read-private",
}

func NewConfiguration() Configuration {
	return Configuration{
		ApiUrl:         DefaultApiUrl,
		AccountsUrl:    DefaultAccountsUrl,
		RedirectUrl:    DefaultRedirectUrl,
		RequestTimeout: DefaultRequestTimeout,
	}
}

type Configuration struct {
	ClientId     string `yaml:"clientId,omitempty"`
	ClientSecret string `yaml:"clientSecret,omitempty"`
	RedirectUrl  string `yaml:"redirectUrl,omitempty"`

	// RefreshToken is only used if the platform does not provide a
	// credentials store.
	RefreshToken string `yaml:"refreshToken,omitempty"`

	ApiUrl         string        `yaml:"apiUrl,omitempty"`
	AccountsUrl    string        `yaml:"accountsUrl,omitempty"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("spotify.clientId", "Client ID of the Spotify application used to access the Web API. Will be requested on the terminal if absent.").
		Envar("SPOTIFY_CLIENT_ID").
		StringVar(&this.ClientId)
	using.Flag("spotify.clientSecret", "Client secret of the Spotify application used to access the Web API. Will be requested on the terminal if absent.").
		Envar("SPOTIFY_CLIENT_SECRET").
		StringVar(&this.ClientSecret)
	using.Flag("spotify.redirectUrl", "Redirect URL registered for the Spotify application.").
		Envar("SPOTIFY_REDIRECT_URI").
		StringVar(&this.RedirectUrl)
	using.Flag("spotify.apiUrl", "Base URL of the Spotify Web API.").
		Envar("SILENTIFY_SPOTIFY_API_URL").
		StringVar(&this.ApiUrl)
	using.Flag("spotify.accountsUrl", "Base URL of the Spotify accounts service.").
		Envar("SILENTIFY_SPOTIFY_ACCOUNTS_URL").
		StringVar(&this.AccountsUrl)
	using.Flag("spotify.requestTimeout", "Maximum duration of every request against the Spotify Web API.").
		Envar("SILENTIFY_SPOTIFY_REQUEST_TIMEOUT").
		DurationVar(&this.RequestTimeout)
}

func (this Configuration) apiUrl() string {
	if v := this.ApiUrl; v != "" {
		return v
	}
	return DefaultApiUrl
}

func (this Configuration) accountsUrl() string {
	if v := this.AccountsUrl; v != "" {
		return v
	}
	return DefaultAccountsUrl
}

func (this Configuration) redirectUrl() string {
	if v := this.RedirectUrl; v != "" {
		return v
	}
	return DefaultRedirectUrl
}

func (this Configuration) requestTimeout() time.Duration {
	if v := this.RequestTimeout; v > 0 {
		return v
	}
	return DefaultRequestTimeout
}

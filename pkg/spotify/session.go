package spotify

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	log "github.com/echocat/slf4g"
	"golang.org/x/oauth2"

	"github.com/blaubaer/silentify/pkg/common"
	"github.com/blaubaer/silentify/pkg/credentials"
)

// Session holds the authorized access to the Spotify Web API of one
// account.
type Session struct {
	*Client

	User User

	conf         *Configuration
	saveConfFunc func() error
	mutex        sync.Mutex

	// stdin of the prompts, os.Stdin if nil.
	stdin    io.ReadCloser
	newState func() (string, error)
}

// Connect authorizes against Spotify. A cached refresh token is reused; if
// none exists (or it was revoked) the user is guided through the
// authorization on the terminal.
func Connect(ctx context.Context, conf *Configuration, saveConfFunc func() error) (*Session, error) {
	return newSession(conf, saveConfFunc).connect(ctx)
}

func newSession(conf *Configuration, saveConfFunc func() error) *Session {
	return &Session{
		conf:         conf,
		saveConfFunc: saveConfFunc,
		newState:     newState,
	}
}

func (this *Session) connect(ctx context.Context) (*Session, error) {
	cred, err := this.resolveCredentials()
	if err != nil {
		return nil, err
	}

	for reauthorized := false; ; reauthorized = true {
		if cred.SpotifyRefreshToken == "" {
			if cred, err = this.authorize(ctx, cred); err != nil {
				return nil, err
			}
		}

		oc := this.oauth2Config(cred)
		ts := &storingTokenSource{
			delegate: oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.SpotifyRefreshToken}),
			last:     cred.SpotifyRefreshToken,
			onChange: func(refreshToken string) {
				this.mutex.Lock()
				defer this.mutex.Unlock()
				cred.SpotifyRefreshToken = refreshToken
				if err := this.storeCredentials(cred); err != nil {
					log.WithError(err).
						Warn("Cannot store refreshed token. The app will work now, but next time the authorization might be required again.")
				}
			},
		}
		this.Client = NewClient(this.conf, oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, ts)))

		user, err := this.CurrentUser(ctx)
		var rErr *oauth2.RetrieveError
		if err != nil && !reauthorized && errors.As(err, &rErr) {
			log.WithError(err).
				Warn("Cached authorization was rejected. Authorization is required again.")
			cred.SpotifyRefreshToken = ""
			continue
		}
		if err != nil {
			return nil, err
		}

		this.User = user
		return this, nil
	}
}

func (this *Session) oauth2Config(cred credentials.Credentials) *oauth2.Config {
	base := strings.TrimRight(this.conf.accountsUrl(), "/")
	return &oauth2.Config{
		ClientID:     cred.SpotifyClientId,
		ClientSecret: cred.SpotifyClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/authorize",
			TokenURL:  base + "/api/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		RedirectURL: this.conf.redirectUrl(),
		Scopes:      Scopes,
	}
}

func (this *Session) authorize(ctx context.Context, cred credentials.Credentials) (credentials.Credentials, error) {
	fail := func(err error) (credentials.Credentials, error) {
		return credentials.Credentials{}, err
	}

	state, err := this.newState()
	if err != nil {
		return fail(err)
	}

	oc := this.oauth2Config(cred)
	log.With("url", oc.AuthCodeURL(state)).
		Info("Authorization required. Open the URL in a browser, grant access and paste the URL you were redirected to.")

	for {
		var redirected string
		if err := this.prompt("redirected URL", false).RequestStringIfRequired(&redirected); err != nil {
			return fail(fmt.Errorf("cannot request redirected URL: %w", err))
		}

		code, err := codeOf(redirected, state)
		if err != nil {
			log.WithError(err).
				Error("Provided redirected URL is invalid.")
			continue
		}

		token, err := oc.Exchange(ctx, code)
		if err != nil {
			return fail(fmt.Errorf("cannot exchange authorization code: %w", err))
		}

		cred.SpotifyRefreshToken = token.RefreshToken
		if err := this.storeCredentials(cred); err != nil {
			log.WithError(err).
				Warn("Cannot store credentials. The app will work now, but next time the authorization might be required again.")
		}
		log.Info("Successful authorized.")
		return cred, nil
	}
}

func codeOf(redirected, expectedState string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(redirected))
	if err != nil {
		return "", fmt.Errorf("illegal URL %q: %w", redirected, err)
	}
	q := u.Query()
	if v := q.Get("error"); v != "" {
		return "", fmt.Errorf("authorization was denied: %s", v)
	}
	if v := q.Get("state"); v != expectedState {
		return "", fmt.Errorf("unexpected state %q", v)
	}
	code := q.Get("code")
	if code == "" {
		return "", fmt.Errorf("URL %q does not contain any code", redirected)
	}
	return code, nil
}

func newState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Reader.Read(buf); err != nil {
		return "", fmt.Errorf("cannot generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (this *Session) loadCredentials() (credentials.Credentials, error) {
	var v credentials.Credentials
	if _, err := v.ReadFromStore(); err != nil {
		return credentials.Credentials{}, err
	}

	if c := this.conf.ClientId; c != "" {
		v.SpotifyClientId = c
	}
	if c := this.conf.ClientSecret; c != "" {
		v.SpotifyClientSecret = c
	}
	if v.SpotifyRefreshToken == "" {
		v.SpotifyRefreshToken = this.conf.RefreshToken
	}

	return v, nil
}

func (this *Session) storeCredentials(cred credentials.Credentials) error {
	supported, err := cred.WriteToStore()
	if err != nil {
		return err
	}
	if supported {
		return nil
	}

	this.conf.ClientId = cred.SpotifyClientId
	this.conf.ClientSecret = cred.SpotifyClientSecret
	this.conf.RefreshToken = cred.SpotifyRefreshToken
	if v := this.saveConfFunc; v != nil {
		return v()
	}
	return nil
}

func (this *Session) resolveCredentials() (credentials.Credentials, error) {
	cred, err := this.loadCredentials()
	if err != nil {
		return credentials.Credentials{}, err
	}

	if !cred.IsSpotifyApplicationZero() {
		return cred, nil
	}

	log.Info("Client ID and secret of a Spotify application are required. Create one at https://developer.spotify.com/dashboard")
	if err := this.prompt("Client ID", false).RequestStringIfRequired(&cred.SpotifyClientId); err != nil {
		return credentials.Credentials{}, fmt.Errorf("cannot request client id: %w", err)
	}
	if err := this.prompt("Client secret", true).RequestStringIfRequired(&cred.SpotifyClientSecret); err != nil {
		return credentials.Credentials{}, fmt.Errorf("cannot request client secret: %w", err)
	}

	return cred, nil
}

func (this *Session) prompt(name string, secret bool) common.Prompt {
	return common.Prompt{
		Name:   name,
		Secret: secret,
		Stdin:  this.stdin,
	}
}

type storingTokenSource struct {
	delegate oauth2.TokenSource
	last     string
	onChange func(refreshToken string)
	mutex    sync.Mutex
}

func (this *storingTokenSource) Token() (*oauth2.Token, error) {
	t, err := this.delegate.Token()
	if err != nil {
		return nil, err
	}

	this.mutex.Lock()
	defer this.mutex.Unlock()
	if v := t.RefreshToken; v != "" && v != this.last {
		this.last = v
		this.onChange(v)
	}
	return t, nil
}

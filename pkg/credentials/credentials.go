package credentials

import (
	"encoding/json"
)

const appName = "github.com/blaubaer/silentify"

type Credentials struct {
	SpotifyClientId     string `json:"spotify_clientId,omitempty"`
	SpotifyClientSecret string `json:"spotify_clientSecret,omitempty"`
	SpotifyRefreshToken string `json:"spotify_refreshToken,omitempty"`
}

func (this *Credentials) IsSpotifyApplicationZero() bool {
	return this.SpotifyClientId == "" || this.SpotifyClientSecret == ""
}

func (this *Credentials) MarshalBinary() (data []byte, err error) {
	return json.Marshal(this)
}

func (this *Credentials) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, this)
}

package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_MarshalBinary(t *testing.T) {
	instance := Credentials{
		SpotifyClientId:     "anId",
		SpotifyRefreshToken: "aToken",
	}

	actual, err := instance.MarshalBinary()
	require.NoError(t, err)
	assert.JSONEq(t, `{"spotify_clientId":"anId","spotify_refreshToken":"aToken"}`, string(actual))

	var decoded Credentials
	require.NoError(t, decoded.UnmarshalBinary(actual))
	assert.Equal(t, instance, decoded)
}

func TestCredentials_IsSpotifyApplicationZero(t *testing.T) {
	assert.True(t, (&Credentials{}).IsSpotifyApplicationZero())
	assert.True(t, (&Credentials{SpotifyClientId: "anId"}).IsSpotifyApplicationZero())
	assert.True(t, (&Credentials{SpotifyRefreshToken: "aToken"}).IsSpotifyApplicationZero())
	assert.False(t, (&Credentials{SpotifyClientId: "anId", SpotifyClientSecret: "aSecret"}).IsSpotifyApplicationZero())
}

package spotify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_withCachedRefreshToken(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("would use the Windows Credentials store")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "aRefreshToken", r.PostForm.Get("refresh_token"))
		id, secret, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "anId", id)
		assert.Equal(t, "aSecret", secret)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"anAccessToken","token_type":"Bearer","expires_in":3600,"refresh_token":"aNewRefreshToken"}`))
	})
	mux.HandleFunc("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anAccessToken", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"u1","display_name":"Jane","email":"jane@example.com"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	conf := NewConfiguration()
	conf.ApiUrl = server.URL + "/v1"
	conf.AccountsUrl = server.URL
	conf.ClientId = "anId"
	conf.ClientSecret = "aSecret"
	conf.RefreshToken = "aRefreshToken"

	saved := 0
	actual, err := Connect(context.Background(), &conf, func() error {
		saved++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", actual.User.DisplayName)
	assert.Equal(t, "aNewRefreshToken", conf.RefreshToken)
	assert.Equal(t, 1, saved)
}

func TestConnect_authorizesAgainIfCachedTokenIsRejected(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("would use the Windows Credentials store")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch r.PostForm.Get("grant_type") + ":" + r.PostForm.Get("refresh_token") + r.PostForm.Get("code") {
		case "refresh_token:aRevokedToken":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Refresh token revoked"}`))
		case "authorization_code:aCode":
			assert.Equal(t, "http://127.0.0.1:8888/callback", r.PostForm.Get("redirect_uri"))
			_, _ = w.Write([]byte(`{"access_token":"anAccessToken","token_type":"Bearer","expires_in":3600,"refresh_token":"aFreshToken"}`))
		case "refresh_token:aFreshToken":
			_, _ = w.Write([]byte(`{"access_token":"anAccessToken","token_type":"Bearer","expires_in":3600}`))
		default:
			assert.Failf(t, "unexpected token request", "%v", r.PostForm)
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	mux.HandleFunc("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anAccessToken", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"u1","display_name":"Jane"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	conf := NewConfiguration()
	conf.ApiUrl = server.URL + "/v1"
	conf.AccountsUrl = server.URL
	conf.RedirectUrl = "http://127.0.0.1:8888/callback"
	conf.ClientId = "anId"
	conf.ClientSecret = "aSecret"
	conf.RefreshToken = "aRevokedToken"

	saved := 0
	instance := newSession(&conf, func() error {
		saved++
		return nil
	})
	instance.stdin = io.NopCloser(strings.NewReader("http://127.0.0.1:8888/callback?code=aCode&state=aState\n"))
	instance.newState = func() (string, error) {
		return "aState", nil
	}

	actual, err := instance.connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jane", actual.User.DisplayName)
	assert.Equal(t, "aFreshToken", conf.RefreshToken)
	assert.Equal(t, 1, saved)
}

func TestCodeOf(t *testing.T) {
	actual, err := codeOf("http://127.0.0.1:8888/callback?code=aCode&state=aState", "aState")
	require.NoError(t, err)
	assert.Equal(t, "aCode", actual)

	_, err = codeOf("http://127.0.0.1:8888/callback?code=aCode&state=other", "aState")
	assert.Error(t, err)

	_, err = codeOf("http://127.0.0.1:8888/callback?error=access_denied&state=aState", "aState")
	assert.Error(t, err)

	_, err = codeOf("http://127.0.0.1:8888/callback?state=aState", "aState")
	assert.Error(t, err)
}

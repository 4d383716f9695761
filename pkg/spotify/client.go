package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/echocat/slf4g"
	"golang.org/x/oauth2"

	"github.com/blaubaer/silentify/pkg/playback"
)

// User is the account the session belongs to.
type User struct {
	Id          string
	DisplayName string
	Email       string
}

func (this User) String() string {
	if this.Email == "" {
		return this.DisplayName
	}
	return fmt.Sprintf("%s (%s)", this.DisplayName, this.Email)
}

// Client queries the Spotify Web API using an already authorized
// http.Client.
type Client struct {
	conf   *Configuration
	client *http.Client
}

func NewClient(conf *Configuration, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		conf:   conf,
		client: client,
	}
}

// CurrentPlayback returns what is currently playing for the session.
// Every failure is reported as *playback.QueryError.
func (this *Client) CurrentPlayback(ctx context.Context) (playback.Snapshot, error) {
	const op = "query current playback"

	params := url.Values{}
	params.Set("additional_types", "track,episode")

	var payload *currentlyPlayingResponse
	found, err := this.get(ctx, op, "/me/player/currently-playing", params, &payload)
	if err != nil {
		return playback.Snapshot{}, err
	}
	if !found || payload == nil {
		return playback.Nothing(), nil
	}

	result := payload.snapshot()
	log.With("snapshot", result).
		With("type", payload.CurrentlyPlayingType).
		Trace("Current playback retrieved.")
	return result, nil
}

// CurrentUser returns the account the session is authorized for.
func (this *Client) CurrentUser(ctx context.Context) (User, error) {
	const op = "retrieve current user"

	var payload userResponse
	found, err := this.get(ctx, op, "/me", nil, &payload)
	if err != nil {
		return User{}, err
	}
	if !found {
		return User{}, &playback.QueryError{Op: op, Err: fmt.Errorf("empty response")}
	}

	return User{
		Id:          payload.Id,
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
	}, nil
}

// get decodes the response of the given path into target. found is false
// if the API did respond without any content.
func (this *Client) get(ctx context.Context, op, path string, params url.Values, target any) (found bool, err error) {
	fail := func(retryable bool, err error) (bool, error) {
		return false, &playback.QueryError{Op: op, Err: err, Retryable: retryable}
	}

	ctx, cancelFunc := context.WithTimeout(ctx, this.conf.requestTimeout())
	defer cancelFunc()

	u := strings.TrimRight(this.conf.apiUrl(), "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fail(false, err)
	}
	req.Header.Set("Accept", "application/json")

	rsp, err := this.client.Do(req)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return fail(false, fmt.Errorf("session is not authorized anymore: %w", err))
		}
		return fail(true, fmt.Errorf("failed to access %s: %w", path, err))
	}
	defer func() {
		_ = rsp.Body.Close()
	}()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return fail(true, fmt.Errorf("cannot read response of %s: %w", path, err))
	}

	switch {
	case rsp.StatusCode == http.StatusNoContent:
		return false, nil
	case rsp.StatusCode == http.StatusOK:
		if len(bytes.TrimSpace(body)) == 0 {
			return false, nil
		}
		if err := json.Unmarshal(body, target); err != nil {
			return fail(false, fmt.Errorf("failed to decode response body of %s: %w", path, err))
		}
		return true, nil
	case rsp.StatusCode == http.StatusTooManyRequests:
		return false, &playback.QueryError{
			Op:         op,
			Err:        statusError(rsp, body),
			Retryable:  true,
			RetryAfter: retryAfterOf(rsp),
		}
	case rsp.StatusCode >= 500:
		return fail(true, statusError(rsp, body))
	default:
		return fail(false, statusError(rsp, body))
	}
}

func statusError(rsp *http.Response, body []byte) error {
	var eRsp errorResponse
	if err := json.Unmarshal(body, &eRsp); err == nil && eRsp.Error.Message != "" {
		return fmt.Errorf("unexpected status code: %d - %s", rsp.StatusCode, eRsp.Error.Message)
	}
	return fmt.Errorf("unexpected status code: %d - %s", rsp.StatusCode, rsp.Status)
}

func retryAfterOf(rsp *http.Response) time.Duration {
	plain := strings.TrimSpace(rsp.Header.Get("Retry-After"))
	if plain == "" {
		return 0
	}
	if v, err := strconv.ParseInt(plain, 10, 64); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	if v, err := http.ParseTime(plain); err == nil {
		if d := time.Until(v); d > 0 {
			return d
		}
	}
	return 0
}

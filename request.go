package steamquery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rotolabs/steamquery/internal/encoding"
)

// successMode selects which success indicator, if any, an envelope carries.
// Whatever the mode, an absent indicator passes; only an explicit failure
// value rejects.
type successMode int

const (
	successNone successMode = iota
	// successResult expects a numeric "result" field equal to 1.
	successResult
	// successBool expects a boolean "success" field.
	successBool
	// successNumeric expects a numeric "success" field equal to 1.
	successNumeric
)

// endpoint describes one Web API operation: where to send the request and how
// to unwrap what comes back. Fixed per operation, never user supplied.
type endpoint struct {
	path     string
	method   string
	envelope string
	payload  string
	success  successMode
}

var (
	epPublishedFileDetails = endpoint{
		path:     "/ISteamRemoteStorage/GetPublishedFileDetails/v1/",
		method:   http.MethodPost,
		envelope: "response",
		payload:  "publishedfiledetails",
		success:  successResult,
	}
	epCollectionDetails = endpoint{
		path:     "/ISteamRemoteStorage/GetCollectionDetails/v1/",
		method:   http.MethodPost,
		envelope: "response",
		payload:  "collectiondetails",
		success:  successResult,
	}
	epPlayerSummaries = endpoint{
		path:     "/ISteamUser/GetPlayerSummaries/v2/",
		method:   http.MethodGet,
		envelope: "response",
		payload:  "players",
	}
	epPlayerBans = endpoint{
		path:    "/ISteamUser/GetPlayerBans/v1/",
		method:  http.MethodGet,
		payload: "players",
	}
	epUserGroups = endpoint{
		path:     "/ISteamUser/GetUserGroupList/v1/",
		method:   http.MethodGet,
		envelope: "response",
		payload:  "groups",
		success:  successBool,
	}
	epSteamLevel = endpoint{
		path:     "/IPlayerService/GetSteamLevel/v1/",
		method:   http.MethodGet,
		envelope: "response",
		payload:  "player_level",
	}
	epResolveVanityURL = endpoint{
		path:     "/ISteamUser/ResolveVanityURL/v1/",
		method:   http.MethodGet,
		envelope: "response",
		payload:  "steamid",
		success:  successNumeric,
	}
	epFriendList = endpoint{
		path:     "/ISteamUser/GetFriendList/v1/",
		method:   http.MethodGet,
		envelope: "friendslist",
		payload:  "friends",
	}
	epPlayerAchievements = endpoint{
		path:    "/ISteamUserStats/GetPlayerAchievements/v1/",
		method:  http.MethodGet,
		payload: "playerstats",
	}
	epOwnedGames = endpoint{
		path:     "/IPlayerService/GetOwnedGames/v1/",
		method:   http.MethodGet,
		envelope: "response",
	}
)

// do issues exactly one outbound request and returns the status code and the
// fully read body. The API key is appended to the parameters; it is never
// logged. Transport failures come back as plain errors for call to classify.
func (c *Client) do(ctx context.Context, method string, rawURL string, params url.Values) (int, []byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if key := c.key(); key != "" {
		params.Set("key", key)
	}

	var (
		req    *http.Request
		errReq error
	)
	if method == http.MethodPost {
		req, errReq = http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, errReq = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if req != nil {
			req.URL.RawQuery = params.Encode()
		}
	}
	if errReq != nil {
		return 0, nil, errReq
	}

	slog.Debug("Sending api request", slog.String("method", method), slog.String("path", req.URL.Path))

	return c.send(req)
}

// fetch retrieves a raw community page. No credential is attached; these pages
// are public and outside the documented API.
func (c *Client) fetch(ctx context.Context, rawURL string) (int, []byte, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if errReq != nil {
		return 0, nil, errReq
	}

	slog.Debug("Fetching community page", slog.String("path", req.URL.Path))

	return c.send(req)
}

func (c *Client) send(req *http.Request) (int, []byte, error) {
	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return 0, nil, errResp
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	body, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return 0, nil, errRead
	}

	return resp.StatusCode, body, nil
}

// call runs the shared request pipeline for a JSON endpoint: dispatch, check
// transport and status, decode, unwrap the envelope, check the API's own
// success indicator and finally extract the payload field into T. The checks
// short-circuit in that order. An absent payload field is tolerated and yields
// T's zero value; endpoints like the friend list legitimately omit it.
func call[T any](ctx context.Context, client *Client, ep endpoint, params url.Values) (T, error) {
	var zero T

	status, body, errDo := client.do(ctx, ep.method, client.baseURL+ep.path, params)
	if errDo != nil {
		return zero, errors.Join(errDo, ErrTransport)
	}
	if status != http.StatusOK {
		return zero, fmt.Errorf("%w: %d", ErrHTTPStatus, status)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return zero, ErrEmptyBody
	}

	root, errRoot := encoding.Unmarshal[map[string]json.RawMessage](body)
	if errRoot != nil || root == nil {
		return zero, errors.Join(errRoot, ErrMalformedPayload)
	}

	env, envRaw := root, json.RawMessage(body)
	if ep.envelope != "" {
		raw, found := root[ep.envelope]
		if !found {
			return zero, fmt.Errorf("%w: %s", ErrMissingEnvelope, ep.envelope)
		}

		inner, errEnv := encoding.Unmarshal[map[string]json.RawMessage](raw)
		if errEnv != nil {
			return zero, errors.Join(errEnv, ErrMalformedPayload)
		}
		env, envRaw = inner, raw
	}

	if errSuccess := checkSuccess(env, ep.success); errSuccess != nil {
		return zero, errSuccess
	}

	if ep.payload == "" {
		value, errValue := encoding.Unmarshal[T](envRaw)
		if errValue != nil {
			return zero, errors.Join(errValue, ErrMalformedPayload)
		}

		return value, nil
	}

	raw, found := env[ep.payload]
	if !found {
		return zero, nil
	}

	value, errValue := encoding.Unmarshal[T](raw)
	if errValue != nil {
		return zero, errors.Join(errValue, ErrMalformedPayload)
	}

	return value, nil
}

func checkSuccess(env map[string]json.RawMessage, mode successMode) error {
	switch mode {
	case successResult:
		raw, found := env["result"]
		if !found {
			return nil
		}
		result, errResult := encoding.Unmarshal[int](raw)
		if errResult != nil {
			return errors.Join(errResult, ErrMalformedPayload)
		}
		if result != 1 {
			return fmt.Errorf("%w: result %d", ErrAPIFailure, result)
		}
	case successBool:
		raw, found := env["success"]
		if !found {
			return nil
		}
		success, errSuccess := encoding.Unmarshal[bool](raw)
		if errSuccess != nil {
			return errors.Join(errSuccess, ErrMalformedPayload)
		}
		if !success {
			return ErrAPIFailure
		}
	case successNumeric:
		raw, found := env["success"]
		if !found {
			return nil
		}
		success, errSuccess := encoding.Unmarshal[int](raw)
		if errSuccess != nil {
			return errors.Join(errSuccess, ErrMalformedPayload)
		}
		if success != 1 {
			return fmt.Errorf("%w: success %d", ErrAPIFailure, success)
		}
	case successNone:
	}

	return nil
}

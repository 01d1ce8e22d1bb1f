// Package steamquery is a thin client for the Steam Web API and a couple of
// community-site pages that never made it into the documented API surface.
// Every operation is a single best-effort round trip: no retries, no backoff,
// no caching. Callers may invoke operations concurrently, each call is fully
// independent.
package steamquery

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the documented Steam Web API host.
	DefaultBaseURL = "https://api.steampowered.com"
	// DefaultCommunityURL is the community site used by the XML page lookups.
	DefaultCommunityURL = "https://steamcommunity.com"

	DefaultHTTPTimeout = 15 * time.Second

	// maxPlayerSummaryIDs is the documented per-request cap for GetPlayerSummaries.
	maxPlayerSummaryIDs = 100
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// KeyFunc supplies the Web API key. It is read on every call, so implementations
// backed by a reloadable config take effect without rebuilding the client. An
// empty return value is allowed; the upstream API rejects what it must.
type KeyFunc func() string

// StaticKey returns a KeyFunc that always yields the given key.
func StaticKey(key string) KeyFunc {
	return func() string { return key }
}

// Client issues Steam Web API queries. The zero value is not usable, construct
// with New. A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	key          KeyFunc
	httpClient   HTTPDoer
	baseURL      string
	communityURL string
}

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(httpClient HTTPDoer) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURL overrides the Web API host, mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithCommunityURL overrides the community-site host used by the XML lookups.
func WithCommunityURL(communityURL string) Option {
	return func(c *Client) { c.communityURL = communityURL }
}

// New creates a Steam Web API client using key as its credential source.
func New(key KeyFunc, opts ...Option) *Client {
	client := &Client{
		key:          key,
		httpClient:   &http.Client{Timeout: DefaultHTTPTimeout},
		baseURL:      DefaultBaseURL,
		communityURL: DefaultCommunityURL,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

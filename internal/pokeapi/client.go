package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/five82/dex/internal/catalog"
)

// Fetcher defines the catalog API surface. It is implemented by *Client and
// can be faked in tests.
type Fetcher interface {
	FetchIndex(ctx context.Context, limit int) ([]Reference, error)
	FetchRecord(ctx context.Context, ref Reference) (catalog.Record, error)
	FetchRecordByID(ctx context.Context, id string) (catalog.Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokeAPI v2 REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "dex/0.1"
	requestTimeout   = 15 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty value uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchIndex lists every record reference. limit caps the number of entries
// requested and must exceed the real population to get the full set.
func (c *Client) FetchIndex(ctx context.Context, limit int) ([]Reference, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := c.relative("pokemon", values)
	var payload IndexResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, &FetchError{Op: "index", Ref: rel.String(), Err: err}
	}
	return payload.Results, nil
}

// FetchRecord resolves one index entry to its full record.
func (c *Client) FetchRecord(ctx context.Context, ref Reference) (catalog.Record, error) {
	if c == nil {
		return catalog.Record{}, fmt.Errorf("client is nil")
	}
	target, err := c.resolveReference(ref)
	if err != nil {
		return catalog.Record{}, &FetchError{Op: "detail", Ref: ref.Name, Err: err}
	}
	var payload PokemonPayload
	if err := c.doURL(ctx, http.MethodGet, target, &payload); err != nil {
		return catalog.Record{}, &FetchError{Op: "detail", Ref: ref.Name, Err: err}
	}
	return payload.Record(), nil
}

// FetchRecordByID fetches a fresh copy of one record by numeric id or name.
func (c *Client) FetchRecordByID(ctx context.Context, id string) (catalog.Record, error) {
	if c == nil {
		return catalog.Record{}, fmt.Errorf("client is nil")
	}
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return catalog.Record{}, fmt.Errorf("record id required")
	}
	rel := c.relative("pokemon/"+url.PathEscape(key), nil)
	var payload PokemonPayload
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return catalog.Record{}, &FetchError{Op: "detail", Ref: key, Err: err}
	}
	return payload.Record(), nil
}

func (c *Client) relative(path string, values url.Values) *url.URL {
	rel := &url.URL{Path: strings.TrimSuffix(c.baseURL.Path, "/") + "/" + path}
	if len(values) > 0 {
		rel.RawQuery = values.Encode()
	}
	return rel
}

// resolveReference prefers the absolute URL carried by the index entry and
// falls back to the name-based detail path.
func (c *Client) resolveReference(ref Reference) (*url.URL, error) {
	if raw := strings.TrimSpace(ref.URL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse reference url %q: %w", raw, err)
		}
		return u, nil
	}
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return nil, fmt.Errorf("reference has neither url nor name")
	}
	return c.relative("pokemon/"+url.PathEscape(name), nil), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Path: reqURL.Path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

package monplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
)

// ErrRemoteCall is the only failure the gateway reports. The HTTP status,
// body and transport error are logged and then dropped.
var ErrRemoteCall = errors.New("something went wrong when calling the API")

// UnitFetcher defines the read endpoints the rest of the application uses.
// This interface is implemented by *Client and can be used for testing.
type UnitFetcher interface {
	FetchAllUnits(ctx context.Context) ([]Unit, error)
	FetchUnit(ctx context.Context, unitCode string) (Unit, error)
}

// Ensure Client implements UnitFetcher at compile time.
var _ UnitFetcher = (*Client)(nil)

const (
	// DefaultAPIRoot is the monPlan deployment the catalog is served from.
	DefaultAPIRoot   = "https://monplan-api-dev.appspot.com"
	defaultUserAgent = "muse/0.1"

	catalogEndpoint = "basic/units"
	unitRoute       = "units/{unitCode}"
)

// Client talks to the monPlan HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	metrics   *Metrics
	log       log.Interface
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero or negative leaves requests
// unbounded, so a hung call never resolves.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMetrics records request counts and latency into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l log.Interface) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client rooted at apiRoot. Endpoints are appended to the
// root's path, so "https://host/v1" resolves basic/units to /v1/basic/units.
func NewClient(apiRoot string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiRoot)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      cleanhttp.DefaultPooledClient(),
		userAgent: defaultUserAgent,
		log:       log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Call issues one GET against endpoint and returns the response body once it
// is known to be well-formed JSON. The body is not otherwise validated.
func (c *Client) Call(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return c.call(ctx, endpoint, endpoint)
}

// FetchAllUnits retrieves the full unit catalog.
func (c *Client) FetchAllUnits(ctx context.Context) ([]Unit, error) {
	raw, err := c.call(ctx, catalogEndpoint, catalogEndpoint)
	if err != nil {
		return nil, err
	}
	var units []Unit
	if err := json.Unmarshal(raw, &units); err != nil {
		c.log.WithError(err).WithField("endpoint", catalogEndpoint).Debug("catalog payload has unexpected shape")
		return nil, ErrRemoteCall
	}
	return units, nil
}

// FetchUnit retrieves the detail record for one unit code.
func (c *Client) FetchUnit(ctx context.Context, unitCode string) (Unit, error) {
	if c != nil && (unitCode == "." || unitCode == "..") {
		c.log.WithField("unit", unitCode).Debug("refusing dot segment unit code")
		return Unit{}, ErrRemoteCall
	}
	endpoint := "units/" + url.PathEscape(unitCode)
	raw, err := c.call(ctx, unitRoute, endpoint)
	if err != nil {
		return Unit{}, err
	}
	var unit Unit
	if err := json.Unmarshal(raw, &unit); err != nil {
		c.log.WithError(err).WithField("endpoint", endpoint).Debug("unit payload has unexpected shape")
		return Unit{}, ErrRemoteCall
	}
	return unit, nil
}

func (c *Client) call(ctx context.Context, route, endpoint string) (json.RawMessage, error) {
	if c == nil {
		return nil, ErrRemoteCall
	}
	start := time.Now()
	body, err := c.do(ctx, endpoint)
	c.metrics.observe(route, err, time.Since(start))
	if err != nil {
		c.log.WithError(err).WithField("endpoint", endpoint).Debug("remote call failed")
		return nil, ErrRemoteCall
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string) (json.RawMessage, error) {
	reqURL := c.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api %s returned status %d", endpoint, resp.StatusCode)
	}
	var raw json.RawMessage
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode response: trailing data after JSON value")
	}
	return raw, nil
}

func parseBaseURL(apiRoot string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiRoot)
	if trimmed == "" {
		trimmed = DefaultAPIRoot
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_root %q: %w", apiRoot, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_root %q: missing host", apiRoot)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// Package github provides a small unauthenticated GitHub REST v3 client
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"showcase/internal/core/version"
	perr "showcase/internal/platform/errors"
	"showcase/internal/platform/logger"
	str "showcase/internal/platform/strings"
)

const (
	// runes of an error body kept on GHStatusError
	maxErrorBody = 256

	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	maxBody        = 2 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

// Client is a minimal GitHub REST client. Requests are sent once; failures are returned as is.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = version.UserAgent()
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("github"),
		now:  time.Now,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// Do issues a GET-style request against the API and returns the response on 2xx.
// Non-2xx responses become a *GHStatusError wrapped with the matching error code.
func (c *Client) Do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github %s failed", path)
	}

	rem, reset := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Msg("github http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = resp.Body.Close()
	se := &GHStatusError{Status: resp.StatusCode, Body: str.Truncate(strings.TrimSpace(string(body)), maxErrorBody), Path: path}
	return nil, perr.Wrapf(se, perr.CodeFromStatus(resp.StatusCode), "github %s returned %d", path, resp.StatusCode)
}

// getJSON performs a GET and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "github %s read failed", path)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return Malformed(path, err)
	}
	return nil
}

// Malformed labels a decode failure as an unexpected payload shape
func Malformed(what string, err error) error {
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeJSON, "unexpected payload from %s", what), "malformed")
}

// Package youtube provides a thin YouTube Data API v3 client
package youtube

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	perr "setlist/internal/platform/errors"
	"setlist/internal/platform/logger"
)

const (
	baseURLDefault = "https://www.googleapis.com/youtube/v3"
	defaultTimeout = 10 * time.Second
	defaultUA      = "setlist-api"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey is required for every Data API call
	APIKey string
}

// Client is a minimal Data API client.
// It never retries; callers own the retry policy
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
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("youtube"),
		now:  time.Now,
	}
}

// get issues one request, normalizes the status, and decodes into out
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("key", c.opts.APIKey)
	u := c.opts.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "youtube new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		if ctx.Err() != nil {
			// treat caller timeouts like an unreachable upstream
			return perr.Wrapf(ctx.Err(), perr.ErrorCodeUnavailable, "youtube request canceled")
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube do failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("youtube close body failed")
		}
	}()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("youtube http response")

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to decode
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		// quota exhaustion surfaces as 403 on this API
		drain(resp.Body)
		return perr.Newf(perr.ErrorCodeTooManyRequests, "youtube rate limited")
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return perr.Newf(perr.ErrorCodeNotFound, "youtube resource not found")
	case resp.StatusCode >= 500:
		drain(resp.Body)
		return perr.Newf(perr.ErrorCodeUnavailable, "youtube transient server error %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Upstreamf("youtube unexpected status %d body %s", resp.StatusCode, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "youtube decode failed")
	}
	return nil
}

// drain empties a small tail so the connection can be reused
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 512))
}

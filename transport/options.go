package transport

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/taskflow-client/events"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithBroadcaster publishes request lifecycle events to b.
func WithBroadcaster(b *events.Broadcaster) Option {
	return func(c *Client) {
		c.broadcaster = b
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithLoginRedirect registers the hook fired when the session can no longer be refreshed.
func WithLoginRedirect(fn func()) Option {
	return func(c *Client) {
		c.onLoginRedirect = fn
	}
}

func WithRefreshPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.refreshPath = path
		}
	}
}

// WithNowTime overrides the clock used to stamp events.
func WithNowTime(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// RequestOption configures a single Send.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query       url.Values
	blob        bool
	progress    func(sent, total int64)
	header      http.Header
	contentType string
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	ro := &requestOptions{header: http.Header{}}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

// WithQuery appends query parameters to the request URL.
func WithQuery(q url.Values) RequestOption {
	return func(ro *requestOptions) {
		if ro.query == nil {
			ro.query = url.Values{}
		}
		for k, vs := range q {
			for _, v := range vs {
				ro.query.Add(k, v)
			}
		}
	}
}

// WithBlob returns the raw response body instead of expecting JSON.
func WithBlob() RequestOption {
	return func(ro *requestOptions) {
		ro.blob = true
	}
}

// WithProgress reports request body bytes as they are written.
func WithProgress(fn func(sent, total int64)) RequestOption {
	return func(ro *requestOptions) {
		ro.progress = fn
	}
}

func WithHeader(key, value string) RequestOption {
	return func(ro *requestOptions) {
		ro.header.Set(key, value)
	}
}

func WithContentType(ct string) RequestOption {
	return func(ro *requestOptions) {
		ro.contentType = ct
	}
}

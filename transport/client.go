package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/jrsteele09/taskflow-client/events"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/session"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultConnectTimeout = 5 * time.Second
	DefaultTLSTimeout     = 5 * time.Second
	DefaultRefreshPath    = "/auth/refresh"

	requestIDHeader = "X-Request-ID"
	refreshKey      = "refresh"
)

// Credentials is the part of session.Manager the transport needs.
type Credentials interface {
	Token(ctx context.Context) (*oauth2.Token, session.Scope, error)
	ReplaceToken(ctx context.Context, token string) error
	ClearCredential(ctx context.Context) error
}

var _ Credentials = (*session.Manager)(nil)

// Client sends authenticated requests to the REST API. A 401 triggers one token refresh and one
// retry; concurrent 401s share the same refresh round trip.
type Client struct {
	baseURL         string
	creds           Credentials
	httpClient      *http.Client
	timeout         time.Duration
	broadcaster     *events.Broadcaster
	logger          zerolog.Logger
	onLoginRedirect func()
	refreshPath     string
	refreshGroup    singleflight.Group
	now             func() time.Time
}

// Response is a completed 2xx exchange.
type Response struct {
	Status    int
	Header    http.Header
	Body      []byte
	RequestID string
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidResponse, err)
	}
	return nil
}

// DefaultHTTPClient returns a client with bounded connect and TLS handshake times. The overall
// request deadline is applied per attempt by the Client.
func DefaultHTTPClient(connectTimeout, tlsTimeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: connectTimeout,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: tlsTimeout,
		Proxy:               http.ProxyFromEnvironment,
	}
	return &http.Client{
		Transport: transport,
	}
}

// New creates a Client for baseURL, e.g. http://localhost:8000/api/v1.
func New(baseURL string, creds Credentials, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("[transport.New] base url is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("[transport.New] credentials are required")
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		creds:       creds,
		httpClient:  DefaultHTTPClient(DefaultConnectTimeout, DefaultTLSTimeout),
		timeout:     DefaultTimeout,
		logger:      zerolog.Nop(),
		refreshPath: DefaultRefreshPath,
		now:         time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs method on path, relative to the base URL. body may be nil, []byte, an io.Reader
// or any JSON encodable value. Non-2xx responses are returned as *APIError.
func (c *Client) Send(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	ro := newRequestOptions(opts)
	payload, contentType, err := encodeBody(body)
	if err != nil {
		return nil, errors.Wrapf(err, "[transport] encoding %s %s", method, path)
	}
	if ro.contentType == "" {
		ro.contentType = contentType
	}

	token, _, err := c.creds.Token(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "[transport] reading credential")
	}

	resp, err := c.attempt(ctx, method, path, payload, ro, token)
	if !IsStatus(err, http.StatusUnauthorized) || token == nil || path == c.refreshPath {
		return resp, err
	}

	fresh, err := c.refresh(ctx, token)
	if err != nil {
		return nil, err
	}
	return c.attempt(ctx, method, path, payload, ro, fresh)
}

// attempt is one round trip bracketed by lifecycle events.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, ro *requestOptions, token *oauth2.Token) (*Response, error) {
	requestID := uuid.NewString()
	c.publish(events.RequestStarted, method, path, requestID)
	defer c.publish(events.RequestEnded, method, path, requestID)

	return c.exchange(ctx, method, path, payload, ro, token, requestID)
}

func (c *Client) publish(kind events.Kind, method, path, requestID string) {
	if c.broadcaster == nil {
		return
	}
	c.broadcaster.Publish(events.Event{
		Kind:      kind,
		Method:    method,
		Path:      path,
		RequestID: requestID,
		At:        c.now(),
	})
}

func (c *Client) exchange(ctx context.Context, method, path string, payload []byte, ro *requestOptions, token *oauth2.Token, requestID string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
		if ro.progress != nil {
			body = &progressReader{r: body, total: int64(len(payload)), fn: ro.progress}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, ro), body)
	if err != nil {
		return nil, errors.Wrapf(err, "[transport] building %s %s", method, path)
	}
	if payload != nil {
		req.ContentLength = int64(len(payload))
		req.Header.Set("Content-Type", ro.contentType)
	}
	if ro.blob {
		req.Header.Set("Accept", "*/*")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	for k, vs := range ro.header {
		req.Header[k] = vs
	}
	req.Header.Set(requestIDHeader, requestID)
	if token != nil {
		token.SetAuthHeader(req)
	}

	start := c.now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return nil, errors.Wrapf(err, "[transport] %s %s", method, path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "[transport] reading %s %s", method, path)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("duration", c.now().Sub(start)).
		Str("request_id", requestID).
		Msg("request")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, decodeAPIError(res.StatusCode, data)
	}
	return &Response{
		Status:    res.StatusCode,
		Header:    res.Header,
		Body:      data,
		RequestID: requestID,
	}, nil
}

func (c *Client) url(path string, ro *requestOptions) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(ro.query) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + ro.query.Encode()
}

// refresh exchanges the current token for a new one. Callers that arrive while a refresh is in
// flight wait for it and share its result. When the stored token already differs from stale,
// an earlier refresh won and its token is reused without another round trip.
func (c *Client) refresh(ctx context.Context, stale *oauth2.Token) (*oauth2.Token, error) {
	v, err, shared := c.refreshGroup.Do(refreshKey, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		current, _, err := c.creds.Token(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "[transport] reading credential")
		}
		switch {
		case current == nil:
			// A failed refresh already ended the session and fired the redirect.
			return nil, fmt.Errorf("%w: credential was cleared", errors.ErrSessionExpired)
		case current.AccessToken != stale.AccessToken:
			c.logger.Debug().Msg("credential already refreshed, retrying with it")
			return current, nil
		}
		return c.doRefresh(ctx, current)
	})
	if shared {
		c.logger.Debug().Msg("joined in-flight token refresh")
	}
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

func (c *Client) doRefresh(ctx context.Context, current *oauth2.Token) (*oauth2.Token, error) {
	c.logger.Info().Msg("access token rejected, refreshing")

	resp, err := c.exchange(ctx, http.MethodPost, c.refreshPath, nil, newRequestOptions(nil), current, uuid.NewString())
	var token string
	if err == nil {
		var env Envelope[struct {
			Token string `json:"token"`
		}]
		err = resp.Decode(&env)
		token = env.Data.Token
		if err == nil && token == "" {
			err = fmt.Errorf("%w: refresh response carried no token", errors.ErrInvalidResponse)
		}
	}
	if err == nil {
		err = c.creds.ReplaceToken(ctx, token)
	}

	if err != nil {
		c.logger.Warn().Err(err).Msg("token refresh failed, clearing session")
		if clearErr := c.creds.ClearCredential(ctx); clearErr != nil {
			c.logger.Err(clearErr).Msg("clearing credential")
		}
		if c.onLoginRedirect != nil {
			c.onLoginRedirect()
		}
		return nil, fmt.Errorf("%w: %w", errors.ErrSessionExpired, err)
	}

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		Expiry:      session.ParseExpiry(token),
	}, nil
}

func encodeBody(body any) ([]byte, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return b, "application/octet-stream", nil
	case io.Reader:
		data, err := io.ReadAll(b)
		return data, "application/octet-stream", err
	default:
		data, err := json.Marshal(body)
		return data, "application/json", err
	}
}

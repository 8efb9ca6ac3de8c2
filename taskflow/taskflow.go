// Package taskflow assembles the credential stores, transport, endpoint functions and caches into
// one client.
package taskflow

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/events"
	"github.com/jrsteele09/taskflow-client/internal/config"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/realtime"
	"github.com/jrsteele09/taskflow-client/session"
	"github.com/jrsteele09/taskflow-client/store"
	"github.com/jrsteele09/taskflow-client/transport"
)

const sessionFileName = "session.json"

// Client is the assembled application state. Every field is ready to use after New.
type Client struct {
	Config    config.Config
	Sessions  *session.Manager
	Events    *events.Broadcaster
	Busy      *events.BusyTracker
	Transport *transport.Client
	API       *api.Client
	Stores    *store.Registry
	// Stream is nil when no stream URL is configured.
	Stream *realtime.Listener

	log       zerolog.Logger
	onExpired func(loginPath string)
	closers   []func() error
}

type options struct {
	durable    session.KV
	ephemeral  session.KV
	httpClient *http.Client
	logger     zerolog.Logger
	onExpired  func(loginPath string)
	now        func() time.Time
}

type Option func(*options)

// WithDurableStore replaces the file or redis store selected from the config.
func WithDurableStore(kv session.KV) Option {
	return func(o *options) {
		o.durable = kv
	}
}

func WithEphemeralStore(kv session.KV) Option {
	return func(o *options) {
		o.ephemeral = kv
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSessionExpired is called with the login path after a failed token refresh, once every
// cache has been emptied.
func WithSessionExpired(fn func(loginPath string)) Option {
	return func(o *options) {
		o.onExpired = fn
	}
}

func WithNowTime(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func New(cfg config.Config, opts ...Option) (*Client, error) {
	o := options{logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		Config:    cfg,
		log:       o.logger.With().Str("component", "taskflow").Logger(),
		onExpired: o.onExpired,
	}

	durable, err := c.durableStore(cfg, o.durable)
	if err != nil {
		return nil, err
	}
	ephemeral := o.ephemeral
	if ephemeral == nil {
		ephemeral = session.NewMemoryStore()
	}
	if c.Sessions, err = session.NewManager(durable, ephemeral); err != nil {
		return nil, fmt.Errorf("[taskflow New] %w", err)
	}

	c.Events = events.NewBroadcaster()
	c.Busy = events.NewBusyTracker(c.Events)

	hc := o.httpClient
	if hc == nil {
		hc = transport.DefaultHTTPClient(cfg.GetConnectTimeout(), cfg.GetTLSHandshakeTimeout())
	}
	c.Transport, err = transport.New(cfg.GetAPIBaseURL(), c.Sessions,
		transport.WithHTTPClient(hc),
		transport.WithTimeout(cfg.GetRequestTimeout()),
		transport.WithBroadcaster(c.Events),
		transport.WithLogger(o.logger),
		transport.WithRefreshPath(cfg.GetRefreshPath()),
		transport.WithLoginRedirect(c.sessionExpired),
		transport.WithNowTime(o.now),
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("[taskflow New] %w", err)
	}

	c.API = api.New(c.Transport)
	c.Stores = store.NewRegistry(c.API, c.Sessions,
		store.WithPerPage(cfg.GetDefaultPerPage()),
		store.WithNotificationLimit(cfg.GetNotificationLimit()),
		store.WithTrendDays(cfg.GetTrendDays()),
		store.WithLogger(o.logger),
		store.WithNowTime(o.now),
	)

	if url := cfg.GetStreamURL(); url != "" {
		c.Stream, err = realtime.New(url, c.Sessions, c.Stores.Notifications, realtime.WithLogger(o.logger))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("[taskflow New] %w", err)
		}
	}
	return c, nil
}

func (c *Client) durableStore(cfg config.Config, override session.KV) (session.KV, error) {
	if override != nil {
		return override, nil
	}
	if url := cfg.GetRedisURL(); url != "" {
		rs, err := session.NewRedisStore(url, "")
		if err != nil {
			return nil, fmt.Errorf("[taskflow New] %w", err)
		}
		c.closers = append(c.closers, rs.Close)
		c.log.Debug().Msg("durable credentials in redis")
		return rs, nil
	}
	path := filepath.Join(cfg.GetDataFolder(), sessionFileName)
	fs, err := session.NewFileStore(path, session.WithPassphrase(cfg.GetStorageKey()))
	if err != nil {
		return nil, fmt.Errorf("[taskflow New] %w", err)
	}
	c.log.Debug().Str("path", path).Msg("durable credentials on disk")
	return fs, nil
}

// Login signs in through the auth store. remember keeps the credential across restarts.
func (c *Client) Login(ctx context.Context, email, password string, remember bool) error {
	_, err := c.Stores.Auth.Login(ctx, models.LoginCredentials{Email: email, Password: password}, remember)
	return err
}

// Logout signs out and empties every cache, even when the server could not be told.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Stores.Auth.Logout(ctx)
	c.Stores.ResetAll()
	return err
}

func (c *Client) sessionExpired() {
	c.Stores.ResetAll()
	loginPath := c.Config.GetLoginPath()
	c.log.Warn().Str("redirect", loginPath).Msg("session expired")
	if c.onExpired != nil {
		c.onExpired(loginPath)
	}
}

// Close stops the busy tracker and the broadcaster and releases the durable store.
func (c *Client) Close() {
	if c.Busy != nil {
		c.Busy.Close()
	}
	if c.Events != nil {
		c.Events.Close()
	}
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.log.Debug().Err(err).Msg("close failed")
		}
	}
}

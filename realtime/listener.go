// Package realtime streams pushed notifications from the API's websocket endpoint into a store.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
)

// EventNotification frames carry one models.Notification in data.
const EventNotification = "notification"

const (
	DefaultHandshakeTimeout = 5 * time.Second
	DefaultReadTimeout      = 60 * time.Second
	DefaultPingInterval     = 25 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
)

// Frame is one text message on the stream.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Sink receives decoded notifications. *store.NotificationStore is one.
type Sink interface {
	Add(n models.Notification)
}

// Credentials supplies the bearer token sent with the handshake.
type Credentials interface {
	Token(ctx context.Context) (*oauth2.Token, session.Scope, error)
}

type Listener struct {
	url    string
	creds  Credentials
	sink   Sink
	dialer *websocket.Dialer
	log    zerolog.Logger

	readTimeout  time.Duration
	pingInterval time.Duration
	writeTimeout time.Duration
}

type Option func(*Listener)

func WithDialer(d *websocket.Dialer) Option {
	return func(l *Listener) {
		l.dialer = d
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(l *Listener) {
		l.log = log
	}
}

// WithReadTimeout is how long the stream may stay silent, pongs included, before Run gives up.
func WithReadTimeout(d time.Duration) Option {
	return func(l *Listener) {
		l.readTimeout = d
	}
}

func WithPingInterval(d time.Duration) Option {
	return func(l *Listener) {
		l.pingInterval = d
	}
}

func New(url string, creds Credentials, sink Sink, opts ...Option) (*Listener, error) {
	if url == "" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "[realtime New] stream url is empty")
	}
	if creds == nil || sink == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "[realtime New] credentials and sink are required")
	}
	l := &Listener{
		url:          url,
		creds:        creds,
		sink:         sink,
		dialer:       &websocket.Dialer{Proxy: http.ProxyFromEnvironment, HandshakeTimeout: DefaultHandshakeTimeout},
		log:          zerolog.Nop(),
		readTimeout:  DefaultReadTimeout,
		pingInterval: DefaultPingInterval,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Run connects once and hands every notification frame to the sink until ctx ends, which
// returns nil, or the connection fails, which returns the error. Reconnecting is up to the caller.
func (l *Listener) Run(ctx context.Context) error {
	tok, _, err := l.creds.Token(ctx)
	if err != nil {
		return errors.Wrapf(err, "[realtime Run] reading token")
	}
	if tok == nil || tok.AccessToken == "" {
		return errors.Wrapf(errors.ErrNoCredential, "[realtime Run]")
	}
	header := http.Header{}
	header.Set("Authorization", tok.Type()+" "+tok.AccessToken)

	ws, resp, err := l.dialer.DialContext(ctx, l.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return errors.Wrapf(errors.ErrUnauthorized, "[realtime Run] handshake rejected: %v", err)
		}
		return errors.Wrapf(err, "[realtime Run] dialing %s", l.url)
	}
	defer ws.Close()
	l.log.Info().Str("url", l.url).Msg("notification stream connected")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(l.readTimeout))
	})
	go l.keepAlive(ctx, ws)

	for {
		_ = ws.SetReadDeadline(time.Now().Add(l.readTimeout))
		messageType, message, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrapf(err, "[realtime Run] reading")
		}
		if messageType != websocket.TextMessage {
			continue
		}
		l.deliver(message)
	}
}

// keepAlive pings until ctx ends, then closes the connection to unblock the reader.
func (l *Listener) keepAlive(ctx context.Context, ws *websocket.Conn) {
	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = ws.WriteControl(websocket.CloseMessage, closing, time.Now().Add(l.writeTimeout))
			_ = ws.Close()
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(l.writeTimeout)); err != nil {
				l.log.Debug().Err(err).Msg("ping failed")
			}
		}
	}
}

func (l *Listener) deliver(message []byte) {
	var frame Frame
	if err := json.Unmarshal(message, &frame); err != nil {
		l.log.Warn().Err(err).Msg("dropping malformed frame")
		return
	}
	if frame.Event != EventNotification {
		l.log.Debug().Str("event", frame.Event).Msg("ignoring frame")
		return
	}
	var n models.Notification
	if err := json.Unmarshal(frame.Data, &n); err != nil {
		l.log.Warn().Err(err).Msg("dropping malformed notification")
		return
	}
	l.sink.Add(n)
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/taskflow-client/events"
	"github.com/jrsteele09/taskflow-client/internal/config"
	"github.com/jrsteele09/taskflow-client/taskflow"
)

var errNotSignedIn = errors.New("not signed in, run `taskflow login` first")

// app is the state shared by every command of one invocation.
type app struct {
	configDir string
	verbose   bool

	cfg     config.Config
	log     zerolog.Logger
	client  *taskflow.Client
	options []taskflow.Option

	stdin        int
	readPassword func(fd int) ([]byte, error)
	traceDone    chan struct{}
}

// open loads the config and assembles the client once per invocation.
func (a *app) open(cmd *cobra.Command) error {
	if a.client != nil {
		return nil
	}
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cfg, cmd.ErrOrStderr())

	stderr := cmd.ErrOrStderr()
	opts := append([]taskflow.Option{
		taskflow.WithLogger(a.log),
		taskflow.WithSessionExpired(func(string) {
			fprintln(stderr, warnStyle.Render("Your session has expired. Run `taskflow login` to sign in again."))
		}),
	}, a.options...)
	client, err := taskflow.New(cfg, opts...)
	if err != nil {
		return err
	}
	a.client = client

	if a.verbose {
		a.traceRequests(stderr)
	}
	return client.Stores.Auth.Initialize(cmd.Context())
}

func (a *app) close() {
	if a.client == nil {
		return
	}
	a.client.Close()
	if a.traceDone != nil {
		<-a.traceDone
	}
	a.client = nil
}

func (a *app) requireSignedIn(ctx context.Context) error {
	if !a.client.Stores.Auth.IsAuthenticated(ctx) {
		return errNotSignedIn
	}
	return nil
}

// traceRequests prints a line for every request until the client closes.
func (a *app) traceRequests(w io.Writer) {
	ch, _ := a.client.Events.Subscribe()
	a.traceDone = make(chan struct{})
	go func() {
		defer close(a.traceDone)
		for e := range ch {
			if e.Kind == events.RequestStarted {
				logRequest(w, e.Method, e.Path)
			}
		}
	}()
}

func newLogger(cfg config.EnvConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.GetEnv() == "DEV" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

package store

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultPerPage           = 15
	DefaultNotificationLimit = 50
	DefaultTrendDays         = 30
)

type settings struct {
	perPage           int
	notificationLimit int
	trendDays         int
	logger            zerolog.Logger
	now               func() time.Time
}

// Option configures a store.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		perPage:           DefaultPerPage,
		notificationLimit: DefaultNotificationLimit,
		trendDays:         DefaultTrendDays,
		logger:            zerolog.Nop(),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithPerPage sets the page size requested when filters leave it unset.
func WithPerPage(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.perPage = n
		}
	}
}

func WithNotificationLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.notificationLimit = n
		}
	}
}

func WithTrendDays(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.trendDays = n
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithNowTime replaces the clock used for elapsed time and "today" calculations.
func WithNowTime(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

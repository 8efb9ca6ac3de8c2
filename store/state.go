package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/taskflow-client/transport"
)

// state is the error and loading bookkeeping of stores that hold single values rather than lists.
type state struct {
	mu       sync.RWMutex
	err      string
	inflight int
	log      zerolog.Logger
}

func (s *state) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *state) track() func() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}
}

func (s *state) fail(err error, fallback string) error {
	s.mu.Lock()
	s.err = transport.Message(err, fallback)
	s.mu.Unlock()
	s.log.Debug().Err(err).Msg(fallback)
	return err
}

// set stores v under the state lock.
func set[T any](s *state, dst *T, v T) {
	s.mu.Lock()
	*dst = v
	s.mu.Unlock()
}

// read loads src under the state lock.
func read[T any](s *state, src *T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *src
}

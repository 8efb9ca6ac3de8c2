package events

import (
	"sync"
	"time"
)

// Kind identifies a request lifecycle signal.
type Kind int

const (
	RequestStarted Kind = iota
	RequestEnded
)

func (k Kind) String() string {
	switch k {
	case RequestStarted:
		return "started"
	case RequestEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is published by the transport around every network round trip.
type Event struct {
	Kind      Kind
	Method    string
	Path      string
	RequestID string
	At        time.Time
}

const defaultBuffer = 64

// Broadcaster fans events out to any number of subscribers. Channel subscribers never block a
// publish: one whose buffer is full misses the event. Handlers run inline and see every event.
type Broadcaster struct {
	mu       sync.RWMutex
	subs     map[int]chan Event
	handlers map[int]func(Event)
	nextID   int
	buffer   int
	closed   bool
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithBuffer sets the per-subscriber channel capacity.
func WithBuffer(n int) Option {
	return func(b *Broadcaster) {
		if n > 0 {
			b.buffer = n
		}
	}
}

func NewBroadcaster(options ...Option) *Broadcaster {
	b := &Broadcaster{
		subs:     make(map[int]chan Event),
		handlers: make(map[int]func(Event)),
		buffer:   defaultBuffer,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Subscribe registers a listener. The returned func unsubscribes and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Handle registers fn to be called synchronously by every Publish until the returned func is
// called. fn must be quick and must not publish or unsubscribe.
func (b *Broadcaster) Handle(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.handlers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
		})
	}
}

func (b *Broadcaster) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, fn := range b.handlers {
		fn(e)
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Close closes every subscriber channel. Later publishes are dropped.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	clear(b.handlers)
}

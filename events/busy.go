package events

import "sync"

// BusyTracker counts outstanding requests. It registers a handler rather than a channel so no
// start or end signal is ever missed.
type BusyTracker struct {
	mu          sync.Mutex
	count       int
	unsubscribe func()
}

// NewBusyTracker starts counting the requests published on b.
func NewBusyTracker(b *Broadcaster) *BusyTracker {
	t := &BusyTracker{}
	t.unsubscribe = b.Handle(t.observe)
	return t
}

func (t *BusyTracker) observe(e Event) {
	switch e.Kind {
	case RequestStarted:
		t.Start()
	case RequestEnded:
		t.Stop()
	}
}

// Start records one more outstanding request.
func (t *BusyTracker) Start() {
	t.mu.Lock()
	t.count++
	t.mu.Unlock()
}

// Stop records a completed request. The count never drops below zero.
func (t *BusyTracker) Stop() {
	t.mu.Lock()
	if t.count > 0 {
		t.count--
	}
	t.mu.Unlock()
}

func (t *BusyTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *BusyTracker) IsBusy() bool {
	return t.Count() > 0
}

func (t *BusyTracker) Reset() {
	t.mu.Lock()
	t.count = 0
	t.mu.Unlock()
}

// Close stops counting.
func (t *BusyTracker) Close() {
	t.unsubscribe()
}

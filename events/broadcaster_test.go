package events_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/events"
)

func TestBroadcaster_FanOut(t *testing.T) {
	b := events.NewBroadcaster()
	defer b.Close()

	first, unsubFirst := b.Subscribe()
	second, unsubSecond := b.Subscribe()
	defer unsubSecond()

	b.Publish(events.Event{Kind: events.RequestStarted, Path: "/tasks"})

	require.Equal(t, "/tasks", (<-first).Path)
	require.Equal(t, "/tasks", (<-second).Path)

	unsubFirst()
	unsubFirst()
	_, open := <-first
	require.False(t, open)

	b.Publish(events.Event{Kind: events.RequestEnded, Path: "/tasks"})
	require.Equal(t, events.RequestEnded, (<-second).Kind)
}

func TestBroadcaster_PublishDoesNotBlock(t *testing.T) {
	b := events.NewBroadcaster(events.WithBuffer(1))
	defer b.Close()

	ch, unsub := b.Subscribe()
	defer unsub()

	b.Publish(events.Event{Path: "/a"})
	b.Publish(events.Event{Path: "/b"})

	require.Equal(t, "/a", (<-ch).Path)
	select {
	case e := <-ch:
		t.Fatalf("unexpected event %v", e)
	default:
	}
}

func TestBroadcaster_Close(t *testing.T) {
	b := events.NewBroadcaster()
	ch, unsub := b.Subscribe()

	b.Close()
	b.Close()
	unsub()

	_, open := <-ch
	require.False(t, open)

	late, _ := b.Subscribe()
	_, open = <-late
	require.False(t, open)

	b.Publish(events.Event{})
}

func TestBroadcaster_HandlersSeeEveryEvent(t *testing.T) {
	b := events.NewBroadcaster(events.WithBuffer(1))
	defer b.Close()

	var seen []events.Kind
	stop := b.Handle(func(e events.Event) { seen = append(seen, e.Kind) })
	_, unsubscribe := b.Subscribe()
	defer unsubscribe()

	for i := 0; i < 10; i++ {
		b.Publish(events.Event{Kind: events.RequestStarted})
	}
	require.Len(t, seen, 10)

	stop()
	b.Publish(events.Event{Kind: events.RequestEnded})
	require.Len(t, seen, 10)
}

func TestBusyTracker(t *testing.T) {
	b := events.NewBroadcaster()
	defer b.Close()

	tracker := events.NewBusyTracker(b)
	defer tracker.Close()

	b.Publish(events.Event{Kind: events.RequestStarted})
	b.Publish(events.Event{Kind: events.RequestStarted})
	require.Equal(t, 2, tracker.Count())
	require.True(t, tracker.IsBusy())

	b.Publish(events.Event{Kind: events.RequestEnded})
	b.Publish(events.Event{Kind: events.RequestEnded})
	b.Publish(events.Event{Kind: events.RequestEnded})
	require.False(t, tracker.IsBusy())
	require.Equal(t, 0, tracker.Count())

	tracker.Start()
	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
}

func TestBusyTracker_SettlesWithSmallBuffers(t *testing.T) {
	const requests = 200

	b := events.NewBroadcaster(events.WithBuffer(4))
	defer b.Close()
	tracker := events.NewBusyTracker(b)
	defer tracker.Close()

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(events.Event{Kind: events.RequestStarted})
		}()
	}
	wg.Wait()
	require.Equal(t, requests, tracker.Count())

	for i := 0; i < requests; i++ {
		b.Publish(events.Event{Kind: events.RequestEnded})
	}
	require.Zero(t, tracker.Count())
	require.False(t, tracker.IsBusy())
}

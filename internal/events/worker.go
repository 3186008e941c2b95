package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Worker saves audit events on a background goroutine so expense and
// settlement handlers never wait on the events table.
//
// Events logged before Start are buffered. Once Shutdown begins, Log refuses
// new events and counts them as dropped.
type Worker struct {
	store Store
	queue chan Event
	done  chan struct{}

	mu      sync.RWMutex
	started bool
	stopped bool

	dropped atomic.Int64
}

func NewWorker(store Store, bufferSize int) *Worker {
	return &Worker{
		store: store,
		queue: make(chan Event, bufferSize),
		done:  make(chan struct{}),
	}
}

// Start launches the saving goroutine. Calling it more than once is a no-op.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true

	go func() {
		defer close(w.done)
		for event := range w.queue {
			if err := w.store.Save(context.Background(), event); err != nil {
				slog.Error("failed to save event", "error", err, "event_type", event.Type)
			}
		}
	}()
}

// Log queues event. It is dropped with a warning when the buffer is full or
// the worker is shutting down.
func (w *Worker) Log(event Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		w.dropped.Add(1)
		slog.Warn("event worker stopped, dropping event", "event_type", event.Type)
		return
	}

	select {
	case w.queue <- event:
	default:
		w.dropped.Add(1)
		slog.Warn("event queue full, dropping event", "event_type", event.Type)
	}
}

// Dropped returns how many events were refused since the worker was created
func (w *Worker) Dropped() int64 {
	return w.dropped.Load()
}

// Shutdown stops accepting events and waits until everything already queued
// is saved, or until ctx is done.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.queue)
	}
	started := w.started
	w.mu.Unlock()

	if !started {
		if n := len(w.queue); n > 0 {
			slog.Warn("event worker never started, discarding queued events", "remaining_events", n)
		}
		return nil
	}

	slog.Info("draining events before shutdown", "remaining_events", len(w.queue))
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package pps watches the pulse-per-second line a timing GPS drives
// once per second, using the Linux GPIO character device.
package pps

import (
	"sync"
	"time"
)

// Pulse describes one observed leading edge.
type Pulse struct {
	// Seq numbers pulses from 1 since the watcher opened.
	Seq uint64

	// Kernel is the kernel's monotonic timestamp for the edge.
	Kernel time.Duration

	// Wall is the wall clock when the event was handled, which trails
	// the edge itself by the delivery latency.
	Wall time.Time
}

// Watcher latches the most recent pulse seen on a GPIO line. Methods are
// safe for concurrent use.
type Watcher struct {
	mu   sync.Mutex
	last Pulse

	closeFn func() error
}

func (w *Watcher) record(kernel time.Duration) {
	w.mu.Lock()
	w.last = Pulse{Seq: w.last.Seq + 1, Kernel: kernel, Wall: time.Now()}
	w.mu.Unlock()
}

// Last returns the most recent pulse. The second return is false before
// the first edge arrives.
func (w *Watcher) Last() (Pulse, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last, w.last.Seq > 0
}

// Close releases the GPIO line. Only the first call does anything. The
// close itself runs outside the lock so an event handler still draining
// through record cannot deadlock it.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	fn := w.closeFn
	w.closeFn = nil
	w.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn()
}

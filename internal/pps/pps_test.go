package pps

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_LastBeforeFirstPulse(t *testing.T) {
	var w Watcher
	if p, ok := w.Last(); ok {
		t.Fatalf("Last() = %+v, true before any pulse", p)
	}
}

func TestWatcher_RecordsPulses(t *testing.T) {
	var w Watcher

	w.record(5 * time.Second)
	w.record(6 * time.Second)

	p, ok := w.Last()
	if !ok {
		t.Fatal("Last() = false after pulses")
	}
	if p.Seq != 2 {
		t.Errorf("Seq = %d, want 2", p.Seq)
	}
	if p.Kernel != 6*time.Second {
		t.Errorf("Kernel = %v, want 6s", p.Kernel)
	}
	if p.Wall.IsZero() {
		t.Error("Wall not stamped")
	}
}

func TestWatcher_CloseWithoutOpen(t *testing.T) {
	var w Watcher
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	var nilW *Watcher
	if err := nilW.Close(); err != nil {
		t.Fatalf("nil Close() error: %v", err)
	}
}

func TestWatcher_CloseRunsOnce(t *testing.T) {
	calls := 0
	w := Watcher{closeFn: func() error {
		calls++
		return nil
	}}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("close ran %d times, want 1", calls)
	}
}

func TestWatcher_CloseConcurrent(t *testing.T) {
	var calls atomic.Int32
	w := Watcher{closeFn: func() error {
		calls.Add(1)
		return nil
	}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Close(); err != nil {
				t.Errorf("Close() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("close ran %d times, want 1", got)
	}
}

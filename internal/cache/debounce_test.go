package cache

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var fires atomic.Int32

	for i := 0; i < 10; i++ {
		d.Schedule(func() { fires.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Errorf("expected burst to coalesce into 1 fire, got %d", got)
	}
}

func TestDebouncer_RescheduleResetsTimer(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var fires atomic.Int32

	d.Schedule(func() { fires.Add(1) })
	time.Sleep(30 * time.Millisecond)
	// Still inside the quiet period; this must cancel the pending run
	d.Schedule(func() { fires.Add(1) })
	time.Sleep(30 * time.Millisecond)

	// First timer would have fired by now if it had not been reset
	if got := fires.Load(); got != 0 {
		t.Errorf("expected no fire before quiet period elapses, got %d", got)
	}

	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Errorf("expected exactly 1 fire after quiet period, got %d", got)
	}
}

func TestDebouncer_CancelPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fires atomic.Int32

	d.Schedule(func() { fires.Add(1) })
	d.CancelPending()

	time.Sleep(60 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Errorf("expected cancelled run not to fire, got %d", got)
	}

	// Debouncer remains usable after cancellation
	d.Schedule(func() { fires.Add(1) })
	time.Sleep(60 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Errorf("expected 1 fire after re-schedule, got %d", got)
	}
}

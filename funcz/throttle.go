package funcz

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/adobaai/underbar/timez"
)

// Throttler limits the calls of a function to at most one per window.
//
// A call made while idle runs at once and opens a window of length wait.
// Calls made inside the window are coalesced: when the window closes, the
// function runs once more with the arguments of the last of them, which
// opens a new window. If no call arrived in the window, nothing runs.
type Throttler[A any] struct {
	f     func(args ...A)
	wait  time.Duration
	sched timez.Scheduler
	calls metric.Int64Counter
	execs metric.Int64Counter

	mu         sync.Mutex
	ran        bool
	last       time.Time // Start of the current window
	pending    []A
	hasPending bool
	timer      timez.Timer
	gen        uint64 // Bumped per timer so stale callbacks do nothing
}

// Throttle returns a [Throttler] for f with the given window.
func Throttle[A any](f func(args ...A), wait time.Duration, opts ...Option) *Throttler[A] {
	o := newOptions(opts)
	return &Throttler[A]{
		f:     f,
		wait:  wait,
		sched: o.sched,
		calls: o.counter("funcz.throttle.calls", "count of calls made to throttled functions"),
		execs: o.counter("funcz.throttle.executions", "count of calls that ran the function"),
	}
}

// Call runs f now or schedules it for the end of the current window.
// It never blocks on the scheduled run.
func (t *Throttler[A]) Call(args ...A) {
	ctx := context.Background()
	t.calls.Add(ctx, 1)

	t.mu.Lock()
	now := t.sched.Now()
	if t.timer == nil && (!t.ran || now.Sub(t.last) >= t.wait) {
		t.ran = true
		t.last = now
		t.mu.Unlock()
		t.exec(ctx, args)
		return
	}

	t.pending = slices.Clone(args)
	t.hasPending = true
	if t.timer == nil {
		t.gen++
		gen := t.gen
		t.timer = t.sched.AfterFunc(t.wait-now.Sub(t.last), func() { t.trailing(gen) })
	}
	t.mu.Unlock()
}

// Func returns Call as a function value.
func (t *Throttler[A]) Func() func(args ...A) {
	return t.Call
}

// Cancel drops the pending trailing call, if any.
// It reports whether there was one.
func (t *Throttler[A]) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
		t.gen++
	}
	had := t.hasPending
	t.pending, t.hasPending = nil, false
	return had
}

func (t *Throttler[A]) trailing(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	if !t.hasPending {
		t.mu.Unlock()
		return
	}
	args := t.pending
	t.pending, t.hasPending = nil, false
	t.last = t.sched.Now()
	t.mu.Unlock()

	t.exec(context.Background(), args)
}

func (t *Throttler[A]) exec(ctx context.Context, args []A) {
	t.execs.Add(ctx, 1)
	t.f(args...)
}

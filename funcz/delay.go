package funcz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adobaai/underbar/timez"
)

// ErrPanicked is the error of a delayed call that panicked.
var ErrPanicked = errors.New("funcz: delayed call panicked")

type taskState int8

const (
	pending taskState = iota
	fired
	cancelled
)

// Task is a single delayed call.
type Task struct {
	id     xid.ID
	mu     sync.Mutex
	state  taskState
	timer  timez.Timer
	err    error
	done   chan struct{}
	tracer trace.Tracer
	logger *slog.Logger
}

// Delay calls f once, after at least wait, without blocking the caller.
// Use [Bind] to pass arguments.
func Delay(f func(), wait time.Duration, opts ...Option) *Task {
	return schedule(newOptions(opts), f, wait)
}

// DelayUntil is like [Delay] but waits until the next activation of the
// standard cron spec, measured on the scheduler's clock.
func DelayUntil(f func(), spec string, opts ...Option) (*Task, error) {
	o := newOptions(opts)
	wait, err := timez.UntilNext(spec, o.sched.Now())
	if err != nil {
		return nil, err
	}
	return schedule(o, f, wait), nil
}

// Bind returns a function calling f with a copy of args.
func Bind[A any](f func(args ...A), args ...A) func() {
	args = slices.Clone(args)
	return func() { f(args...) }
}

func schedule(o *options, f func(), wait time.Duration) *Task {
	t := &Task{
		id:     xid.New(),
		done:   make(chan struct{}),
		tracer: o.tracer,
	}
	t.logger = o.logger.With("task", t.id.String())

	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = o.sched.AfterFunc(wait, func() { t.run(f) })
	t.logger.Debug("task scheduled", "wait", wait)
	return t
}

func (t *Task) run(f func()) {
	t.mu.Lock()
	if t.state != pending {
		t.mu.Unlock()
		return
	}
	t.state = fired
	t.mu.Unlock()

	ctx, span := t.tracer.Start(context.Background(), "[funcz] delay",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("task.id", t.id.String())),
	)
	defer span.End()
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrPanicked, r)
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			t.logger.ErrorContext(ctx, "delayed call panicked", "panic", r)
		}
	}()

	f()
}

// ID returns the unique id of the task.
func (t *Task) ID() xid.ID {
	return t.id
}

// Cancel prevents the call if it has not started yet.
// It reports whether the call was prevented.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != pending {
		return false
	}
	t.state = cancelled
	t.timer.Stop()
	close(t.done)
	t.logger.Debug("task cancelled")
	return true
}

// Fired reports whether the call has started.
func (t *Task) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == fired
}

// Done returns a channel closed when the call returns or the task is cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns [ErrPanicked] if the call panicked.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

package funcz

import (
	"sync"
	"sync/atomic"
)

// Oncer calls its function at most once and remembers the result.
type Oncer[A, R any] struct {
	f     func(args ...A) R
	once  sync.Once
	fired atomic.Bool
	res   R
}

// NewOnce returns an [Oncer] for f.
func NewOnce[A, R any](f func(args ...A) R) *Oncer[A, R] {
	return &Oncer[A, R]{f: f}
}

// Call runs f with args the first time it is called and returns its result.
// Later calls return that result and ignore their args.
// If f panics, the panic propagates and later calls return the zero R.
func (o *Oncer[A, R]) Call(args ...A) R {
	o.once.Do(func() {
		o.fired.Store(true)
		o.res = o.f(args...)
	})
	return o.res
}

// Fired reports whether f has been called.
func (o *Oncer[A, R]) Fired() bool {
	return o.fired.Load()
}

// Once returns a function that calls f the first time and returns the same
// result on every call.
func Once[R any](f func() R) func() R {
	o := NewOnce(func(...struct{}) R { return f() })
	return func() R { return o.Call() }
}

// OnceArgs is like [Once] for functions with arguments.
// Only the arguments of the first call are used.
func OnceArgs[A, R any](f func(args ...A) R) func(args ...A) R {
	return NewOnce(f).Call
}

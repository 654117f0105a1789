package funcz

import (
	"context"
	"log/slog"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/metric"
)

// Memoizer caches the results of a function by its arguments.
// Arguments must be primitives, see [KeyOf].
type Memoizer[R any] struct {
	f      func(args ...any) R
	store  Store[R]
	logger *slog.Logger
	hits   metric.Int64Counter
	misses metric.Int64Counter
}

// NewMemoizer returns a [Memoizer] for f backed by a store from newStore,
// or by [MapStore] if newStore is nil.
func NewMemoizer[R any](f func(args ...any) R, newStore StoreFactory[R], opts ...Option) *Memoizer[R] {
	o := newOptions(opts)
	if newStore == nil {
		newStore = MapStore[R]
	}
	return &Memoizer[R]{
		f:      f,
		store:  newStore(xid.New().String()),
		logger: o.logger,
		hits:   o.counter("funcz.memoize.hits", "count of calls answered from the cache"),
		misses: o.counter("funcz.memoize.misses", "count of calls that ran the function"),
	}
}

// Call returns the cached result for args, calling f on a miss.
//
// Arguments that cannot be encoded bypass the cache: f is called every time.
func (m *Memoizer[R]) Call(args ...any) R {
	ctx := context.Background()
	key, err := KeyOf(args...)
	if err != nil {
		m.logger.DebugContext(ctx, "memoize bypassed", "err", err)
		return m.f(args...)
	}
	if v, ok := m.store.Get(key); ok {
		m.hits.Add(ctx, 1)
		return v
	}

	m.misses.Add(ctx, 1)
	v := m.f(args...)
	m.store.Set(key, v)
	return v
}

// Len returns the number of cached results, or -1 if the store cannot tell.
func (m *Memoizer[R]) Len() int {
	if l, ok := m.store.(lener); ok {
		return l.Len()
	}
	return -1
}

// Memoize returns a function that caches the results of f in memory.
func Memoize[R any](f func(args ...any) R, opts ...Option) func(args ...any) R {
	return NewMemoizer(f, nil, opts...).Call
}

// MemoizeWith is like [Memoize] with the store created by newStore.
func MemoizeWith[R any](f func(args ...any) R, newStore StoreFactory[R], opts ...Option,
) func(args ...any) R {
	return NewMemoizer(f, newStore, opts...).Call
}

// Memoize1 is [Memoize] for functions of one argument.
func Memoize1[A, R any](f func(A) R, opts ...Option) func(A) R {
	m := NewMemoizer(func(args ...any) R {
		a, _ := args[0].(A)
		return f(a)
	}, nil, opts...)
	return func(a A) R { return m.Call(a) }
}

// Memoize2 is [Memoize] for functions of two arguments.
func Memoize2[A, B, R any](f func(A, B) R, opts ...Option) func(A, B) R {
	m := NewMemoizer(func(args ...any) R {
		a, _ := args[0].(A)
		b, _ := args[1].(B)
		return f(a, b)
	}, nil, opts...)
	return func(a A, b B) R { return m.Call(a, b) }
}

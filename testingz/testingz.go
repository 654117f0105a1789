// Package testingz provides helpers for writing concise tests.
package testingz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Result holds the results of a call returning a value and an error,
// so both can be checked in one chain:
//
//	testingz.R(SortByField(c, "name")).NoError(t).Equal(want)
type Result[T any] struct {
	t   *testing.T
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{v: v, err: err}
}

func (r *Result[T]) V() T {
	return r.v
}

func (r *Result[T]) NoError(t *testing.T, msgf ...any) *Result[T] {
	r.t = t
	require.NoError(t, r.err, msgf...)
	return r
}

func (r *Result[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Result[T] {
	r.t = t
	require.ErrorIs(t, r.err, target, msgf...)
	return r
}

func (r *Result[T]) ErrorContains(t *testing.T, s string, msgf ...any) *Result[T] {
	r.t = t
	require.ErrorContains(t, r.err, s, msgf...)
	return r
}

// Equal requires the value to equal v. It must follow a call taking t.
func (r *Result[T]) Equal(v T, msgf ...any) *Result[T] {
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *Result[T]) Do(f func(t *testing.T, it T)) *Result[T] {
	f(r.t, r.v)
	return r
}

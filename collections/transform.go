package collections

import (
	"fmt"
	"reflect"
)

// Identity returns v.
func Identity[T any](v T) T {
	return v
}

// Map returns a slice containing the results of applying the given transform function
// to each element of the collection, in iteration order.
func Map[K comparable, V, R any](c Collection[K, V], transform func(it V) R) []R {
	res := make([]R, 0, c.Len())
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		res = append(res, transform(v))
	})
	return res
}

// Values returns a copy of the elements of c in iteration order.
func Values[K comparable, V any](c Collection[K, V]) []V {
	return Map(c, Identity[V])
}

// Filter iterates over the collection, returning a slice of all elements predicate returns true for.
func Filter[K comparable, V any](c Collection[K, V], predicate func(it V) bool) []V {
	res := make([]V, 0, c.Len())
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		if predicate(v) {
			res = append(res, v)
		}
	})
	return res
}

// Reject is the opposite of [Filter]: it keeps the elements predicate returns false for.
func Reject[K comparable, V any](c Collection[K, V], predicate func(it V) bool) []V {
	return Filter(c, func(it V) bool { return !predicate(it) })
}

// Reduce folds the collection from left to right, starting with acc.
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(acc A, it V) A, acc A) A {
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		acc = fn(acc, v)
	})
	return acc
}

// ReduceFirst folds the collection using its first element as the accumulator,
// so fn is first called with the first and second elements.
// It returns false if the collection is empty.
func ReduceFirst[K comparable, V any](c Collection[K, V], fn func(acc, it V) V) (res V, ok bool) {
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		if !ok {
			res, ok = v, true
			return
		}
		res = fn(res, v)
	})
	return
}

// Contains reports whether the collection has an element equal to target.
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, it V) bool {
		return found || it == target
	}, false)
}

// Every reports whether predicate is true for all elements.
// A nil predicate tests that each element is not the zero value.
// It is true for an empty collection.
func Every[K comparable, V any](c Collection[K, V], predicate func(it V) bool) bool {
	if predicate == nil {
		predicate = truthy[V]
	}
	return Reduce(c, func(ok bool, it V) bool {
		return ok && predicate(it)
	}, true)
}

// Some reports whether predicate is true for at least one element.
// A nil predicate tests that an element is not the zero value.
func Some[K comparable, V any](c Collection[K, V], predicate func(it V) bool) bool {
	if predicate == nil {
		predicate = truthy[V]
	}
	return !Every(c, func(it V) bool { return !predicate(it) })
}

func truthy[V any](v V) bool {
	return !reflect.ValueOf(&v).Elem().IsZero()
}

// IndexOf returns the index of the first occurrence of target in items, or -1.
func IndexOf[T comparable](items []T, target T) int {
	res := -1
	Each(FromSlice(items), func(it T, i int, _ Collection[int, T]) {
		if res == -1 && it == target {
			res = i
		}
	})
	return res
}

// First returns the first element of items.
func First[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements, or all of them if there are fewer.
func FirstN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return append(make([]T, 0, n), items[:n]...)
}

// Last returns the last element of items.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements, or all of them if there are fewer.
func LastN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return append(make([]T, 0, n), items[len(items)-n:]...)
}

// Pluck returns the value of the named field or map entry of each element.
// The name is matched like [strz.MatchName], so "created_at" finds CreatedAt.
func Pluck[K comparable, V any](c Collection[K, V], name string) (res []any, err error) {
	res = make([]any, 0, c.Len())
	for k, v := range c.All() {
		f, err := fieldOf(v, name)
		if err != nil {
			return nil, fmt.Errorf("collections: pluck %q at %v: %w", name, k, err)
		}
		res = append(res, f.Interface())
	}
	return
}

// Extend copies every entry of srcs into dst, later sources overwriting earlier ones,
// and returns dst. A nil dst is allocated.
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults is like [Extend] but never overwrites a key dst already has.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

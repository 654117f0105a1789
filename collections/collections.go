// Package collections provides functional operators that work uniformly over
// ordered sequences and keyed mappings.
//
// Every operator is built on one traversal, [Each], over a [Collection].
// A Collection is a tagged variant: it is either indexed (built from a slice)
// or keyed (built from a map), and the zero Collection is absent and iterates
// nothing.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
package collections

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Kind is the shape of a [Collection].
type Kind int8

const (
	Absent Kind = iota
	Indexed
	Keyed
)

func (k Kind) String() string {
	switch k {
	case Indexed:
		return "indexed"
	case Keyed:
		return "keyed"
	default:
		return "absent"
	}
}

// Collection is either an ordered sequence addressed by int indexes
// or a mapping addressed by ordered keys.
//
// Indexed collections iterate in index order.
// Keyed collections iterate in ascending key order; the keys are captured
// when the collection is built, so every pass sees the same order.
type Collection[K comparable, V any] struct {
	kind Kind
	n    int
	seq  iter.Seq2[K, V]
}

// FromSlice returns an indexed collection over items.
// The slice is not copied.
func FromSlice[V any](items []V) Collection[int, V] {
	return Collection[int, V]{
		kind: Indexed,
		n:    len(items),
		seq:  indexed(items),
	}
}

// Of returns an indexed collection over the given items.
func Of[V any](items ...V) Collection[int, V] {
	return FromSlice(items)
}

// FromMap returns a keyed collection over m.
// A nil map gives an absent collection.
func FromMap[K cmp.Ordered, V any](m map[K]V) Collection[K, V] {
	if m == nil {
		return Collection[K, V]{}
	}
	keys := lo.Keys(m)
	slices.Sort(keys)
	return Collection[K, V]{
		kind: Keyed,
		n:    len(keys),
		seq:  keyed(keys, m),
	}
}

func indexed[V any](items []V) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; i < len(items); i++ {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}

func keyed[K comparable, V any](keys []K, m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			v, ok := m[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Kind returns the shape of the collection.
func (c Collection[K, V]) Kind() Kind { return c.kind }

// Len returns the number of elements.
func (c Collection[K, V]) Len() int { return c.n }

// All returns the traversal as an iterator, usable with range.
// It stops early when the loop breaks, unlike [Each].
func (c Collection[K, V]) All() iter.Seq2[K, V] {
	if c.seq == nil {
		return func(func(K, V) bool) {}
	}
	return c.seq
}

// Each calls fn(value, key, c) for every element of c in iteration order.
// An absent or empty collection calls nothing.
func Each[K comparable, V any](c Collection[K, V], fn func(v V, k K, c Collection[K, V])) {
	for k, v := range c.All() {
		fn(v, k, c)
	}
}

package collections

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
)

// SortBy returns a copy of the collection's elements sorted in ascending order
// of key. The sort is stable: elements with equal keys keep their order.
func SortBy[K comparable, V any, O cmp.Ordered](c Collection[K, V], key func(it V) O) []V {
	entries := Map(c, func(it V) sortEntry[O, V] { return sortEntry[O, V]{key(it), it} })
	slices.SortStableFunc(entries, func(a, b sortEntry[O, V]) int {
		return cmp.Compare(a.key, b.key)
	})
	return Map(FromSlice(entries), sortEntry[O, V].value)
}

type sortEntry[O, V any] struct {
	key O
	v   V
}

func (e sortEntry[O, V]) value() V { return e.v }

// SortByField is like [SortBy] but the key is the named field or map entry of
// each element, see [Pluck]. Booleans, numbers and strings are supported.
func SortByField[K comparable, V any](c Collection[K, V], name string) ([]V, error) {
	entries := make([]sortEntry[reflect.Value, V], 0, c.Len())
	for k, v := range c.All() {
		f, err := fieldOf(v, name)
		if err != nil {
			return nil, fmt.Errorf("collections: sort by %q at %v: %w", name, k, err)
		}
		if classOf(f) == unordered {
			return nil, fmt.Errorf("collections: sort by %q at %v: %w: %s", name, k, ErrNotOrdered, f.Kind())
		}
		entries = append(entries, sortEntry[reflect.Value, V]{f, v})
	}
	slices.SortStableFunc(entries, func(a, b sortEntry[reflect.Value, V]) int {
		return compareValues(a.key, b.key)
	})
	return Map(FromSlice(entries), sortEntry[reflect.Value, V].value), nil
}

// Rand is a source of uniformly distributed ints in [0, n).
// [*rand.Rand] implements it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a copy of items in a uniformly random order.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(globalRand{}, items)
}

// ShuffleWith is like [Shuffle] but draws from r.
// It performs a Fisher-Yates shuffle on the copy.
func ShuffleWith[T any](r Rand, items []T) []T {
	res := append(make([]T, 0, len(items)), items...)
	for i := len(res) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		res[i], res[j] = res[j], res[i]
	}
	return res
}

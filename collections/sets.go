package collections

import (
	"reflect"

	"github.com/samber/lo"
)

// Uniq returns a duplicate-free copy of items in which only the first
// occurrence of each element is kept.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, false, Identity[T])
}

// UniqBy is like [Uniq] but compares the keys computed by key.
//
// If isSorted is true the caller asserts that items are already sorted by key,
// so equal keys are adjacent and no seen-set is needed.
func UniqBy[T any, K comparable](items []T, isSorted bool, key func(it T) K) []T {
	res := make([]T, 0, len(items))
	if isSorted {
		var last K
		for i, it := range items {
			k := key(it)
			if i > 0 && k == last {
				continue
			}
			last = k
			res = append(res, it)
		}
		return res
	}

	seen := make(map[K]struct{}, len(items))
	Each(FromSlice(items), func(it T, _ int, _ Collection[int, T]) {
		k := key(it)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		res = append(res, it)
	})
	return res
}

// Intersection returns the elements present in every array, each once,
// in the order they first appear in the first array.
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	others := make([]map[T]struct{}, 0, len(arrays)-1)
	for _, a := range arrays[1:] {
		others = append(others, setOf(a))
	}
	return Filter(FromSlice(Uniq(arrays[0])), func(it T) bool {
		for _, set := range others {
			if _, ok := set[it]; !ok {
				return false
			}
		}
		return true
	})
}

// Difference returns the elements of array that are not in any of others,
// keeping their order and repetitions.
func Difference[T comparable](array []T, others ...[]T) []T {
	excluded := make(map[T]struct{})
	for _, o := range others {
		for _, it := range o {
			excluded[it] = struct{}{}
		}
	}
	return Reject(FromSlice(array), func(it T) bool {
		_, ok := excluded[it]
		return ok
	})
}

func setOf[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// Item is a slot of a zipped tuple. Present is false when the source array
// was too short to fill it.
type Item[T any] struct {
	Value   T
	Present bool
}

// Get returns the value and whether it is present.
func (it Item[T]) Get() (T, bool) {
	return it.Value, it.Present
}

// Zip groups the elements of the arrays by index: tuple i holds the i-th
// element of every array. The result is as long as the longest array and
// the missing slots of shorter arrays are not present.
func Zip[T any](arrays ...[]T) [][]Item[T] {
	if len(arrays) == 0 {
		return [][]Item[T]{}
	}
	longest := lo.MaxBy(arrays, func(a, b []T) bool { return len(a) > len(b) })
	res := make([][]Item[T], len(longest))
	for i := range res {
		tuple := make([]Item[T], len(arrays))
		for j, a := range arrays {
			if i < len(a) {
				tuple[j] = Item[T]{Value: a[i], Present: true}
			}
		}
		res[i] = tuple
	}
	return res
}

// Flatten expands nested slices and arrays into one slice, depth first and
// left to right. If shallow is true only the top level is expanded.
// Other elements are kept as they are.
func Flatten(nested []any, shallow bool) []any {
	return flatten(make([]any, 0, len(nested)), reflect.ValueOf(nested), shallow, 0)
}

func flatten(res []any, seq reflect.Value, shallow bool, depth int) []any {
	for i := 0; i < seq.Len(); i++ {
		it := seq.Index(i).Interface()
		inner := reflect.ValueOf(it)
		if isSequence(inner) && (!shallow || depth == 0) {
			res = flatten(res, inner, shallow, depth+1)
			continue
		}
		res = append(res, it)
	}
	return res
}

func isSequence(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// FlattenSlices concatenates xs into one slice.
func FlattenSlices[T any](xs [][]T) []T {
	return lo.Flatten(xs)
}

package funcz

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrUnsupportedArg is returned by [KeyOf] for arguments that are not primitives.
var ErrUnsupportedArg = errors.New("funcz: unsupported argument")

// KeyOf encodes an argument list of primitives into a cache key.
//
// Each argument is written as its type and its value, both length prefixed,
// so the key of (1, "1") differs from (1, 1) and (1, 23) differs from (12, 3).
// Booleans, numbers, strings, types based on them and nil are supported.
//
// Distinct types that print the same, such as types declared inside
// different functions, get distinct tags within a process. The first of them
// seen keeps the plain name, so keys of package level types are stable
// across processes.
func KeyOf(args ...any) (string, error) {
	var b strings.Builder
	for i, a := range args {
		tag, val, ok := encodeArg(a)
		if !ok {
			return "", fmt.Errorf("%w: arg %d is %T", ErrUnsupportedArg, i, a)
		}
		writeField(&b, tag)
		writeField(&b, val)
	}
	return b.String(), nil
}

func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func encodeArg(a any) (tag, val string, ok bool) {
	if a == nil {
		return "nil", "", true
	}
	rv := reflect.ValueOf(a)
	tag = typeTag(rv.Type())

	switch rv.Kind() {
	case reflect.Bool:
		val = strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		val = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		val = strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		val = strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		val = strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.String:
		val = rv.String()
	default:
		return "", "", false
	}
	return tag, val, true
}

var (
	tagMu    sync.Mutex
	tags     = make(map[reflect.Type]string)
	tagNames = make(map[string]int)
)

// typeTag names rt by package path and type string, suffixed with "#n" when
// another type already uses that name. Type strings never contain '#'.
func typeTag(rt reflect.Type) string {
	tagMu.Lock()
	defer tagMu.Unlock()
	if tag, ok := tags[rt]; ok {
		return tag
	}
	tag := rt.String()
	if p := rt.PkgPath(); p != "" {
		tag = p + " " + tag
	}
	if n := tagNames[tag]; n > 0 {
		tagNames[tag] = n + 1
		tag += "#" + strconv.Itoa(n)
	} else {
		tagNames[tag] = 1
	}
	tags[rt] = tag
	return tag
}

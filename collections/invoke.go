package collections

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/adobaai/underbar/strz"
)

// Invoke calls fn with each element as the receiver, followed by args,
// and returns the results in iteration order.
func Invoke[K comparable, V, R any](c Collection[K, V], fn func(recv V, args ...any) R, args ...any) []R {
	return Map(c, func(it V) R { return fn(it, args...) })
}

var errorType = reflect.TypeFor[error]()

// InvokeMethod calls the method called name on each element with args
// and returns the first result of every call, or nil for methods without results.
// Besides methods, an exported field holding a non-nil func is callable too.
//
// Elements the name does not resolve to a callable on, or whose callable does
// not accept args, are skipped: their slot is nil and a [*NotCallableError] is
// added to the returned error. Use [multierr.Errors] to list them.
//
// If a call returns a non-nil error as its last result, InvokeMethod stops and
// returns that error as is.
func InvokeMethod[K comparable, V any](c Collection[K, V], name string, args ...any) (res []any, err error) {
	res = make([]any, 0, c.Len())
	for k, v := range c.All() {
		fn, reason := callableOf(v, name)
		var in []reflect.Value
		if reason == "" {
			in, reason = callArgs(fn.Type(), args)
		}
		if reason != "" {
			err = multierr.Append(err, &NotCallableError{Key: k, Name: name, Reason: reason})
			res = append(res, nil)
			continue
		}

		out, cerr := call(fn, in)
		if cerr != nil {
			return nil, cerr
		}
		res = append(res, out)
	}
	return
}

func callableOf(v any, name string) (fn reflect.Value, reason string) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return fn, "nil element"
	}
	if k := rv.Kind(); (k == reflect.Pointer || k == reflect.Interface) && rv.IsNil() {
		return fn, "nil element"
	}
	if m := rv.MethodByName(name); m.IsValid() {
		return m, ""
	}
	rt := rv.Type()
	for i := range rt.NumMethod() {
		if strz.MatchName(rt.Method(i).Name, name) {
			return rv.Method(i), ""
		}
	}
	f, err := fieldOf(v, name)
	if err != nil {
		return fn, "no such method"
	}
	if f.Kind() != reflect.Func || f.IsNil() {
		return fn, fmt.Sprintf("field is %s", f.Kind())
	}
	return f, ""
}

func callArgs(ft reflect.Type, args []any) (in []reflect.Value, reason string) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Sprintf("want at least %d args, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Sprintf("want %d args, got %d", n, len(args))
	}

	in = make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		if a == nil {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, fmt.Sprintf("arg %d: nil for %s", i, pt)
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Sprintf("arg %d: %s is not assignable to %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, ""
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func call(fn reflect.Value, in []reflect.Value) (any, error) {
	out := fn.Call(in)
	if n := len(out); n > 0 && fn.Type().Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

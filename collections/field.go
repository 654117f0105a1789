package collections

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/adobaai/underbar/strz"
)

// fieldOf looks up the exported struct field or the string keyed map entry
// called name, following pointers and interfaces.
// Struct fields also match their json tag name.
func fieldOf(v any, name string) (reflect.Value, error) {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			if tag := jsonName(f); strz.MatchName(f.Name, name) || (tag != "" && tag == name) {
				return indirectIface(rv.Field(i)), nil
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if e.IsValid() {
			return indirectIface(e), nil
		}
	}
	return reflect.Value{}, ErrNoField
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func indirectIface(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		return rv.Elem()
	}
	return rv
}

type orderClass int8

const (
	unordered orderClass = iota
	boolClass
	intClass
	uintClass
	floatClass
	stringClass
)

func classOf(rv reflect.Value) orderClass {
	switch rv.Kind() {
	case reflect.Bool:
		return boolClass
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intClass
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintClass
	case reflect.Float32, reflect.Float64:
		return floatClass
	case reflect.String:
		return stringClass
	default:
		return unordered
	}
}

func (c orderClass) numeric() bool {
	return c == intClass || c == uintClass || c == floatClass
}

// compareValues orders two values of ordered classes.
// Numbers of different classes compare as float64;
// other mixed classes order by class.
func compareValues(a, b reflect.Value) int {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		if ca.numeric() && cb.numeric() {
			return cmp.Compare(asFloat(a), asFloat(b))
		}
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case boolClass:
		return cmp.Compare(b2i(a.Bool()), b2i(b.Bool()))
	case intClass:
		return cmp.Compare(a.Int(), b.Int())
	case uintClass:
		return cmp.Compare(a.Uint(), b.Uint())
	case floatClass:
		return cmp.Compare(a.Float(), b.Float())
	case stringClass:
		return cmp.Compare(a.String(), b.String())
	}
	return 0
}

func asFloat(rv reflect.Value) float64 {
	switch classOf(rv) {
	case intClass:
		return float64(rv.Int())
	case uintClass:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

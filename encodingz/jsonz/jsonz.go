// Package jsonz provides generic helpers around encoding/json.
package jsonz

import "encoding/json"

// Unmarshal decodes bs into a new T.
func Unmarshal[T any](bs []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(bs, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Value is like [Unmarshal] but returns the decoded value itself.
// The zero T is returned on error.
func Value[T any](bs []byte) (T, error) {
	t, err := Unmarshal[T](bs)
	if err != nil {
		var zero T
		return zero, err
	}
	return *t, nil
}

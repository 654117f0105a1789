package collections

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCallable is returned when a method name does not resolve to something callable.
	ErrNotCallable = errors.New("not callable")
	// ErrNoField is returned when an element has no field or entry with the given name.
	ErrNoField = errors.New("no such field")
	// ErrNotOrdered is returned when field values cannot be compared with each other.
	ErrNotOrdered = errors.New("not ordered")
)

// NotCallableError reports the element a method could not be called on.
type NotCallableError struct {
	Key    any // Index or map key of the element
	Name   string
	Reason string
}

func (e *NotCallableError) Error() string {
	s := fmt.Sprintf("collections: %q is not callable on element %v", e.Name, e.Key)
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	return s
}

func (e *NotCallableError) Unwrap() error {
	return ErrNotCallable
}

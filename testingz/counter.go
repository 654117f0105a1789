package testingz

import "sync"

// Counter records the calls made to a function under test.
// It is safe for concurrent use.
type Counter[A any] struct {
	mu    sync.Mutex
	calls [][]A
}

// Func records a call with args.
func (c *Counter[A]) Func(args ...A) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, append([]A(nil), args...))
}

// N returns the number of recorded calls.
func (c *Counter[A]) N() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns the arguments of every recorded call.
func (c *Counter[A]) Calls() [][]A {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]A(nil), c.calls...)
}

// Last returns the arguments of the last call, or nil.
func (c *Counter[A]) Last() []A {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}

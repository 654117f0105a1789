package funcz

// Wrapper decorates a function of type F.
type Wrapper[F any] func(next F) F

// Chain returns a wrapper that applies ws so that ws[0] is the outermost.
func Chain[F any](ws ...Wrapper[F]) Wrapper[F] {
	return func(next F) F {
		for i := len(ws) - 1; i >= 0; i-- {
			next = ws[i](next)
		}
		return next
	}
}

// Wrap returns a function that passes f and its arguments to wrapper,
// letting wrapper run code before and after f, or not call f at all.
func Wrap[A, R any](
	f func(args ...A) R,
	wrapper func(f func(args ...A) R, args ...A) R,
) func(args ...A) R {
	return func(args ...A) R {
		return wrapper(f, args...)
	}
}

// Compose returns the composition of fs: Compose(f, g, h)(x) is f(g(h(x))).
// Composing nothing returns the identity.
func Compose[T any](fs ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			x = fs[i](x)
		}
		return x
	}
}

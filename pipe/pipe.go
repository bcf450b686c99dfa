// Package pipe provides left-to-right function composition over a single
// evolving value. It is the combinator that threads a color value through a
// sequence of curried stages, but it is generic and carries no color
// knowledge of its own.
package pipe

// Pipe threads v through stages in order and returns the final value. It
// stops at the first stage that returns an error; the zero value of T is
// returned alongside that error.
func Pipe[T any](v T, stages ...func(T) (T, error)) (T, error) {
	var err error
	for _, stage := range stages {
		v, err = stage(v)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// Chain is the error-free variant of Pipe for stages that cannot fail.
func Chain[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Stage lifts an infallible transform into a Pipe-compatible stage, so pure
// and fallible stages can be mixed in one pipeline.
func Stage[T any](fn func(T) T) func(T) (T, error) {
	return func(v T) (T, error) {
		return fn(v), nil
	}
}

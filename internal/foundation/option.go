// Package foundation provides small generic building blocks shared by docnode packages.
package foundation

import "fmt"

// Option represents a value that may or may not be present.
// Node fields use it where the absence of a value differs from the empty string.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option with a value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// UnwrapOr returns the value if present, otherwise returns the fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String renders the value itself, or "None" when absent.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprint(o.value)
	}
	return "None"
}

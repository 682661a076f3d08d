// Package pointer provides utilities for working with optional values held as pointers.
package pointer

// From will create a pointer to the provided value.
func From[T any](t T) *T {
	return &t
}

// ValueOr returns the value v points to, or def when v is nil.
func ValueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}


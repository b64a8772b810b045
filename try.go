package frp

import "github.com/flowkit/frp/internal"

// Try is the success-or-failure carrier every emission travels through:
// a success holding a value of type T, or a failure holding an error.
type Try[T any] struct {
	Value T
	Err   error
}

// Success builds a successful try-value.
func Success[T any](v T) Try[T] { return Try[T]{Value: v} }

// Failure builds a failed try-value.
func Failure[T any](err error) Try[T] { return Try[T]{Err: err} }

// IsSuccess reports whether this try-value carries a value.
func (t Try[T]) IsSuccess() bool { return t.Err == nil }

// IsFailure reports whether this try-value carries an error.
func (t Try[T]) IsFailure() bool { return t.Err != nil }

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func tryFromInternal[T any](tv internal.Try) Try[T] {
	if tv.IsFailure() {
		return Try[T]{Err: tv.Err}
	}
	return Try[T]{Value: as[T](tv.Value)}
}

func (t Try[T]) toInternal() internal.Try {
	if t.IsFailure() {
		return internal.Failure(t.Err)
	}
	return internal.Success(t.Value)
}

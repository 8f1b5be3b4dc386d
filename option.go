package dynarray

import "fmt"

// Option holds either a value or nothing. It is comparable whenever T is,
// so it can be the element type of a List.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Value() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprint(o.value)
}

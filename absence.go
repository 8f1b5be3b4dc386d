package dynarray

import "reflect"

// Maybe is implemented by element types that carry their own "no value" state.
type Maybe interface {
	IsNone() bool
}

type absence uint8

const (
	absenceUnresolved absence = iota
	absenceNever
	absenceNil
	absenceNone
	absenceDynamic
)

var maybeType = reflect.TypeFor[Maybe]()

func absenceOf[T any]() absence {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return absenceDynamic
	}
	if nilable(t.Kind()) {
		return absenceNil
	}
	if t.Implements(maybeType) {
		return absenceNone
	}
	return absenceNever
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice,
		reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

func isAbsent[T any](mode absence, v T) bool {
	switch mode {
	case absenceNil:
		return reflect.ValueOf(&v).Elem().IsNil()
	case absenceNone:
		return any(v).(Maybe).IsNone()
	case absenceDynamic:
		x := any(v)
		if x == nil {
			return true
		}
		if rv := reflect.ValueOf(x); nilable(rv.Kind()) && rv.IsNil() {
			return true
		}
		if m, ok := x.(Maybe); ok {
			return m.IsNone()
		}
	}
	return false
}

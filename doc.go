// Package dynarray provides a generic growable list backed by a single
// contiguous array with explicit capacity management.
//
// The package centers on one type:
//
//   - [List]: indexed access, append with doubling growth, positional
//     insert and removal, removal by value, pop, clear and trim
//   - [Option]: a comparable optional value for element types that need
//     a "no value" representation
//
// # Example
//
//	l := dynarray.New[int]()
//	_ = l.Add(10)
//	_ = l.Insert(0, 5)
//	v, _ := l.Get(1) // 10
//	l.TrimExcess()
//
// # Absent values
//
// A list never stores an absent element. Nil pointers, nil interfaces and
// values whose [Maybe.IsNone] reports true are rejected by Add, Insert,
// Set and Remove with [ErrInvalidArgument].
//
// # Thread Safety
//
// List instances are NOT thread-safe. Callers that share a list across
// goroutines must serialize access themselves.
package dynarray

package dynarray

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity of a list created by New.
const DefaultCapacity = 4

// List is a growable sequence of elements stored in one contiguous backing
// array. Slots [0, Count) hold the elements; slots [Count, Cap) hold the zero
// value of T.
//
// The zero List is empty with capacity 0 and ready to use.
type List[T comparable] struct {
	items []T
	count int
	mode  absence
}

// New returns an empty list with DefaultCapacity.
func New[T comparable]() *List[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity returns an empty list whose backing store holds capacity
// elements. It panics if capacity is negative.
func WithCapacity[T comparable](capacity int) *List[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("dynarray: negative capacity %d", capacity))
	}
	return &List[T]{
		items: make([]T, capacity),
		mode:  absenceOf[T](),
	}
}

// Count returns the number of elements in the list.
func (l *List[T]) Count() int { return l.count }

// Cap returns the length of the backing store.
func (l *List[T]) Cap() int { return len(l.items) }

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, rangeError("get", index, l.count)
	}
	return l.items[index], nil
}

// Ref returns a pointer to the slot at index. The pointer is only valid
// until the next call that mutates the list.
func (l *List[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= l.count {
		return nil, rangeError("ref", index, l.count)
	}
	return &l.items[index], nil
}

// Set overwrites the element at index.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= l.count {
		return rangeError("set", index, l.count)
	}
	if l.absent(item) {
		return absentError("set", l.count)
	}
	l.items[index] = item
	return nil
}

// Add appends item, doubling the backing store when it is full.
func (l *List[T]) Add(item T) error {
	if l.absent(item) {
		return absentError("add", l.count)
	}
	if l.count == len(l.items) {
		l.grow()
	}
	l.items[l.count] = item
	l.count++
	return nil
}

// Insert places item at index, moving every element at or after index one
// slot to the right. Inserting at Count is equivalent to Add.
func (l *List[T]) Insert(index int, item T) error {
	if l.absent(item) {
		return absentError("insert", l.count)
	}
	if index < 0 || index > l.count {
		return rangeError("insert", index, l.count)
	}
	if l.count == len(l.items) {
		l.grow()
	}
	// right to left so nothing is overwritten before it moves
	for i := l.count; i > index; i-- {
		l.items[i] = l.items[i-1]
	}
	l.items[index] = item
	l.count++
	return nil
}

// Remove deletes the first element equal to item and reports whether one
// was found.
func (l *List[T]) Remove(item T) (bool, error) {
	if l.absent(item) {
		return false, absentError("remove", l.count)
	}
	for i := 0; i < l.count; i++ {
		if l.items[i] == item {
			l.removeAt(i)
			return true, nil
		}
	}
	return false, nil
}

// RemoveAt deletes the element at index, moving later elements one slot
// to the left.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.count {
		return rangeError("removeat", index, l.count)
	}
	l.removeAt(index)
	return nil
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l.count == 0 {
		return zero, &OpError{Op: "pop", Index: -1, Count: 0, Wrapped: ErrInvalidOperation}
	}
	last := l.count - 1
	item := l.items[last]
	l.items[last] = zero
	l.count--
	return item, nil
}

// Clear empties the list without changing its capacity.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.count; i++ {
		l.items[i] = zero
	}
	l.count = 0
}

// TrimExcess shrinks the backing store to exactly Count elements.
func (l *List[T]) TrimExcess() {
	if l.count == len(l.items) {
		return
	}
	l.resize(l.count)
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, l.items[i])
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List[T]) absent(item T) bool {
	if l.mode == absenceUnresolved {
		l.mode = absenceOf[T]()
	}
	return isAbsent(l.mode, item)
}

func (l *List[T]) grow() {
	l.resize(max(len(l.items)*2, 1))
}

func (l *List[T]) resize(capacity int) {
	items := make([]T, capacity)
	for i := 0; i < l.count; i++ {
		items[i] = l.items[i]
	}
	l.items = items
}

// removeAt clears the slot at index and closes the gap left to right.
func (l *List[T]) removeAt(index int) {
	var zero T
	l.items[index] = zero
	last := l.count - 1
	for i := index; i < last; i++ {
		l.items[i] = l.items[i+1]
	}
	l.items[last] = zero
	l.count--
}

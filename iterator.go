package veclist

import (
	"errors"

	"github.com/holmberd/go-veclist/internal/arena"
)

// Iterator references a single slot. Two iterators compare equal with ==
// iff they reference the same slot. The zero Iterator references nothing.
//
// An iterator obtained from an insertion stays valid and dereferenceable
// through any number of later operations that do not erase (or relocate via
// Optimize) its own element: growth, erasure elsewhere and splice merges
// included.
type Iterator[T any] struct {
	n *arena.Node[T]
}

// Value returns the referenced element.
// It panics on the end iterator or an erased element.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Ref returns a pointer to the referenced element, valid until the element
// is erased or relocated. It panics on the end iterator or an erased
// element.
func (it Iterator[T]) Ref() *T {
	n := it.n
	switch {
	case n == nil:
		panic(errors.New("veclist: dereference of zero iterator"))
	case !n.Used:
		if n.Prev != nil {
			panic(errors.New("veclist: dereference of end iterator"))
		}
		panic(errors.New("veclist: dereference of erased element"))
	}
	return &n.Value
}

// Next returns an iterator to the following element; from the last element
// it returns the end iterator. It panics when advancing past the end or
// from an erased element.
func (it Iterator[T]) Next() Iterator[T] {
	n := it.n
	switch {
	case n == nil:
		panic(errors.New("veclist: advance of zero iterator"))
	case !n.Used:
		if n.Prev != nil {
			panic(errors.New("veclist: advance past end"))
		}
		panic(errors.New("veclist: advance of erased iterator"))
	}
	return Iterator[T]{n: n.Next}
}

// Prev returns an iterator to the preceding element; from the end iterator
// it returns the last element. It panics when stepping before the first
// element or from an erased element.
func (it Iterator[T]) Prev() Iterator[T] {
	n := it.n
	switch {
	case n == nil:
		panic(errors.New("veclist: advance of zero iterator"))
	case !n.Used && n.Prev == nil:
		panic(errors.New("veclist: advance of erased iterator"))
	}
	p := n.Prev
	if !p.Used {
		// The predecessor is the sentinel: stepping onto it would move
		// before the first element (or before end on an empty list).
		panic(errors.New("veclist: advance before begin"))
	}
	return Iterator[T]{n: p}
}

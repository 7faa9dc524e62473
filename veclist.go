// Package veclist implements a doubly linked list that lives inside
// contiguous, geometrically growing buckets instead of individually
// heap-allocated nodes.
//
// It keeps every semantic guarantee of a classic linked list: O(1) insert
// and erase anywhere, iterator stability across mutation elsewhere, ordered
// traversal, and O(1) whole-container splice. Erased slots are recycled
// through an intrusive free chain before any new bucket is allocated, and
// Optimize re-packs a fragmented list into the fewest, densest buckets.
//
// A List is not safe for concurrent use; callers needing concurrency must
// synchronize externally.
package veclist

import (
	"errors"
	"iter"

	"github.com/holmberd/go-veclist/internal/arena"
)

// List is a doubly linked list stored in buckets. The zero value is not
// usable; create lists with New or Custom and pass them by pointer.
type List[T any] struct {
	arena arena.Arena[T]

	// root is the permanent sentinel anchoring the circular live chain:
	// root.Next is the first element and root.Prev the last. It lives in
	// the List itself rather than in any bucket, so it is never occupied,
	// never on the free chain, and never transplanted by a splice.
	root arena.Node[T]

	size        int
	compactions uint64
}

// New creates a new, empty list with the default config.
func New[T any]() *List[T] {
	l, err := Custom[T](DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return l
}

// Custom creates a new, empty list with a custom config.
func Custom[T any](config Config) (*List[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	l := &List[T]{}
	l.arena.Init(config.Logger, config.arenaConfig())
	l.root.Next = &l.root
	l.root.Prev = &l.root
	return l, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Empty returns whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Cap returns the number of slots the list can hold without growing,
// occupied slots included.
func (l *List[T]) Cap() int {
	return l.arena.Cap()
}

// Reserve grows capacity to at least n slots without relocating any
// element. It bypasses the geometric growth factor.
func (l *List[T]) Reserve(n int) {
	l.arena.Reserve(n)
}

// Begin returns an iterator to the first element, or End for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.root.Next}
}

// End returns the past-the-end iterator. It never dereferences.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{n: &l.root}
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.size == 0 {
		panic(errors.New("veclist: front of empty list"))
	}
	return l.root.Next.Value
}

// Back returns the last element. It panics if the list is empty.
func (l *List[T]) Back() T {
	if l.size == 0 {
		panic(errors.New("veclist: back of empty list"))
	}
	return l.root.Prev.Value
}

// Insert inserts v immediately before pos and returns an iterator to the
// new element. Amortized O(1); no existing iterator is invalidated.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	return Iterator[T]{n: l.insertBefore(l.posNode(pos, "insert"), v)}
}

// PushBack appends v and returns an iterator to the new element.
func (l *List[T]) PushBack(v T) Iterator[T] {
	return Iterator[T]{n: l.insertBefore(&l.root, v)}
}

// PushFront prepends v and returns an iterator to the new element.
func (l *List[T]) PushFront(v T) Iterator[T] {
	return Iterator[T]{n: l.insertBefore(l.root.Next, v)}
}

// Erase removes the element at pos and returns an iterator to the next
// element. Only the iterator to the erased element is invalidated. It
// panics if pos is the end iterator or already erased.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	n := pos.n
	switch {
	case n == nil:
		panic(errors.New("veclist: erase with zero iterator"))
	case !n.Used:
		if n.Prev != nil {
			panic(errors.New("veclist: erase of end iterator"))
		}
		panic(errors.New("veclist: erase of already erased element"))
	}
	next := n.Next
	n.Prev.Next = n.Next
	n.Next.Prev = n.Prev
	l.arena.Put(n)
	l.size--
	return Iterator[T]{n: next}
}

// EraseRange removes the elements in [first, last) one by one and returns
// last. O(k) in the number of elements removed.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// PopFront removes the first element. It panics if the list is empty.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic(errors.New("veclist: pop from empty list"))
	}
	l.Erase(l.Begin())
}

// PopBack removes the last element. It panics if the list is empty.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		panic(errors.New("veclist: pop from empty list"))
	}
	l.Erase(Iterator[T]{n: l.root.Prev})
}

// Resize grows the list with zero values or shrinks it from the back until
// it holds n elements.
func (l *List[T]) Resize(n int) {
	var zero T
	l.ResizeWith(n, zero)
}

// ResizeWith grows the list with copies of v or shrinks it from the back
// until it holds n elements.
func (l *List[T]) ResizeWith(n int, v T) {
	for l.size < n {
		l.insertBefore(&l.root, v)
	}
	for l.size > n {
		l.PopBack()
	}
}

// Clear removes all elements but keeps the allocated buckets, so capacity
// is unchanged and no reallocation happens on refill.
func (l *List[T]) Clear() {
	l.arena.Refill()
	l.root.Next = &l.root
	l.root.Prev = &l.root
	l.size = 0
}

// Reset removes all elements and releases the buckets, dropping capacity
// to zero. Slot addresses handed out earlier are dead after this.
func (l *List[T]) Reset() {
	l.arena.Release()
	l.root.Next = &l.root
	l.root.Prev = &l.root
	l.size = 0
}

// All returns a forward iterator over the elements, first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.Next; n != &l.root; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the elements, last to first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.Prev; n != &l.root; n = n.Prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Reverse reverses the element order in place by swapping every ring node's
// links, the sentinel included. O(len); free slots are untouched. No
// iterator is invalidated, but next and previous swap meaning for all of
// them at once.
func (l *List[T]) Reverse() {
	n := &l.root
	for {
		n.Next, n.Prev = n.Prev, n.Next
		n = n.Prev // The old Next.
		if n == &l.root {
			return
		}
	}
}

// insertBefore links a fresh slot holding v immediately before at.
func (l *List[T]) insertBefore(at *arena.Node[T], v T) *arena.Node[T] {
	n := l.arena.Get()
	n.Value = v
	n.Used = true
	n.Prev = at.Prev
	n.Next = at
	at.Prev.Next = n
	at.Prev = n
	l.size++
	return n
}

// posNode validates an iterator used as an insertion position: it must
// reference a live element or the end sentinel.
func (l *List[T]) posNode(pos Iterator[T], op string) *arena.Node[T] {
	n := pos.n
	switch {
	case n == nil:
		panic(errors.New("veclist: " + op + " with zero iterator"))
	case !n.Used && n.Prev == nil:
		panic(errors.New("veclist: " + op + " at erased position"))
	}
	return n
}

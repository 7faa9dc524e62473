package veclist

import "errors"

// Splice transplants all of other's elements and storage into l immediately
// before pos, in O(1) regardless of other's size: the donor's buckets, free
// chain and capacity are adopted wholesale and its live chain is relinked
// at pos. Iterators into the moved elements stay valid. The donor is left
// valid and empty with zero capacity.
//
// An empty donor contributes no elements; its spare capacity is still
// adopted. Splicing a list into itself panics.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == l {
		panic(errors.New("veclist: splice of a list into itself"))
	}
	at := l.posNode(pos, "splice")
	if other.size > 0 {
		first, last := other.root.Next, other.root.Prev
		at.Prev.Next = first
		first.Prev = at.Prev
		last.Next = at
		at.Prev = last
		l.size += other.size
	}
	l.arena.Adopt(&other.arena)
	other.root.Next = &other.root
	other.root.Prev = &other.root
	other.size = 0
}

// SpliceElement moves the element at it from other to l, inserting it
// immediately before pos, and returns an iterator to the moved element in
// l. The element is re-slotted (move-insert at pos, erase at the source),
// so it is O(1) but the original iterator is invalidated.
//
// other may be l itself provided pos does not equal it.
func (l *List[T]) SpliceElement(pos Iterator[T], other *List[T], it Iterator[T]) Iterator[T] {
	at := l.posNode(pos, "splice")
	v := it.Value()
	n := l.insertBefore(at, v)
	other.Erase(it)
	return Iterator[T]{n: n}
}

// SpliceRange moves the elements in [first, last) from other to l,
// inserting them immediately before pos in their original order. O(k) in
// the number of elements moved.
//
// other may be l itself provided pos is not within [first, last).
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	at := l.posNode(pos, "splice")
	for first != last {
		l.insertBefore(at, first.Value())
		first = other.Erase(first)
	}
}

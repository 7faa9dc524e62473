package veclist

// Optimize re-packs the live elements into the fewest, densest buckets.
// After many interleaved inserts and erases the elements may be scattered
// across many partially occupied buckets; Optimize walks the list in order
// and relocates every element into a dense prefix, keeping the chain
// consistent at every step. Element order and Len are unchanged.
//
// With shrink, buckets left without elements are released and Cap drops to
// the smallest bucket-granular value covering Len. Without shrink, Cap is
// unchanged and the emptied buckets are folded back into the free chain,
// largest first.
//
// Optimize is the one operation that relocates elements between slots:
// iterators and Refs into the list are invalidated by it. Immediately
// afterwards, new insertions fill the remaining room of the last
// destination bucket, memory-adjacent to their logical neighbours.
func (l *List[T]) Optimize(shrink bool) {
	l.arena.Compact(&l.root, l.size, shrink)
	l.compactions++
}

package veclist

// Stats represents list storage stats.
type Stats struct {
	Len         int    // Occupied slots.
	Cap         int    // Occupied plus free slots, excluding the sentinel.
	Free        int    // Slots on the free chain.
	Buckets     int    // Allocated buckets.
	Compactions uint64 // Times Optimize has run.
}

// Stats returns a snapshot of the list's storage stats.
func (l *List[T]) Stats() Stats {
	return Stats{
		Len:         l.size,
		Cap:         l.arena.Cap(),
		Free:        l.arena.Free(),
		Buckets:     l.arena.NumBuckets(),
		Compactions: l.compactions,
	}
}

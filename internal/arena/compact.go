package arena

import "sort"

// Compact re-packs the size occupied slots of the ring anchored at root into
// the fewest, densest buckets. Destination buckets are chosen greedily by
// descending capacity until they cover size; the final pick prefers the
// smallest bucket that still covers the remaining need, so the selection
// does not overshoot by more than it has to.
//
// The walk visits the ring in order and pairs each element with the next
// destination slot in address order, repairing neighbour links at every
// relocation, so the ring is never inconsistent mid-walk. Afterwards the
// free chain is rebuilt: the spare slots of the last destination bucket come
// first (the next inserts land adjacent to their logical neighbours), then,
// when shrink is off, the unselected buckets in size-descending order. With
// shrink on, unselected buckets are released and capacity drops to the
// smallest bucket-granular value covering size.
//
// It returns the number of buckets released.
func (a *Arena[T]) Compact(root *Node[T], size int, shrink bool) (released int) {
	if len(a.buckets) == 0 {
		return 0
	}

	dest, rest := a.selectDest(size)

	// Relocate live elements into the destination prefix, in ring order.
	cur := root.Next
	c := destCursor[T]{arena: a, dest: dest}
	for cur != root {
		d := c.next()
		if d != cur {
			if d.Used {
				// d holds an element due later in the walk: swap payloads
				// and ring positions.
				cur.Value, d.Value = d.Value, cur.Value
				swapRing(cur, d)
			} else {
				// d is a hole: move the payload and take over cur's ring
				// position.
				var zero T
				d.Value = cur.Value
				d.Used = true
				cur.Value = zero
				cur.Used = false
				d.Prev, d.Next = cur.Prev, cur.Next
				d.Prev.Next = d
				d.Next.Prev = d
				cur.Next, cur.Prev = nil, nil
			}
			cur = d
		}
		cur = cur.Next
	}

	// Rebuild the free chain: spare destination slots first, in address
	// order, starting right after the last relocated element.
	a.freeHead, a.freeTail = nil, nil
	a.free = 0
	for bi := c.bucket; bi < len(dest); bi++ {
		b := a.buckets[dest[bi]]
		start := 0
		if bi == c.bucket {
			start = c.slot
		}
		for i := start; i < len(b); i++ {
			a.appendHole(&b[i])
		}
	}

	if shrink {
		packed := make([][]Node[T], 0, len(dest))
		capacity := 0
		for _, di := range dest {
			packed = append(packed, a.buckets[di])
			capacity += len(a.buckets[di])
		}
		released = len(rest)
		a.buckets = packed
		a.capacity = capacity
		a.logger.Debug("arena compacted",
			"live", size,
			"capacity", a.capacity,
			"released_buckets", released,
		)
		return released
	}

	// Fold unselected buckets back into the free chain, largest first, so
	// the biggest reclaimed bucket is consumed before future growth.
	for _, ri := range rest {
		b := a.buckets[ri]
		for i := range b {
			a.appendHole(&b[i])
		}
	}
	return 0
}

// selectDest picks destination bucket indices covering need slots. Both
// returned slices are ordered by descending bucket capacity.
func (a *Arena[T]) selectDest(need int) (dest, rest []int) {
	idx := make([]int, len(a.buckets))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return len(a.buckets[idx[i]]) > len(a.buckets[idx[j]])
	})

	for len(idx) > 0 && need > 0 {
		if len(a.buckets[idx[0]]) >= need {
			// The remainder fits in one bucket: take the smallest one that
			// still covers it.
			j := len(idx) - 1
			for len(a.buckets[idx[j]]) < need {
				j--
			}
			dest = append(dest, idx[j])
			idx = append(idx[:j], idx[j+1:]...)
			need = 0
			break
		}
		dest = append(dest, idx[0])
		need -= len(a.buckets[idx[0]])
		idx = idx[1:]
	}
	return dest, idx
}

// appendHole resets a slot and appends it at the free chain tail.
func (a *Arena[T]) appendHole(n *Node[T]) {
	var zero T
	n.Value = zero
	n.Used = false
	n.Prev = nil
	n.Next = nil
	if a.freeHead == nil {
		a.freeHead = n
	} else {
		a.freeTail.Next = n
	}
	a.freeTail = n
	a.free++
}

// destCursor walks the destination buckets slot by slot in address order.
type destCursor[T any] struct {
	arena  *Arena[T]
	dest   []int
	bucket int // Index into dest.
	slot   int // Index into the current destination bucket.
}

func (c *destCursor[T]) next() *Node[T] {
	for c.slot >= len(c.arena.buckets[c.dest[c.bucket]]) {
		c.bucket++
		c.slot = 0
	}
	n := &c.arena.buckets[c.dest[c.bucket]][c.slot]
	c.slot++
	return n
}

// swapRing exchanges the ring positions of two distinct occupied nodes,
// handling the adjacent cases where naive pointer exchange would self-link.
func swapRing[T any](x, y *Node[T]) {
	switch {
	case x.Next == y:
		px, ny := x.Prev, y.Next
		px.Next = y
		y.Prev = px
		y.Next = x
		x.Prev = y
		x.Next = ny
		ny.Prev = x
	case y.Next == x:
		swapRing(y, x)
	default:
		px, nx := x.Prev, x.Next
		py, ny := y.Prev, y.Next
		px.Next, nx.Prev = y, y
		py.Next, ny.Prev = x, x
		x.Prev, x.Next = py, ny
		y.Prev, y.Next = px, nx
	}
}

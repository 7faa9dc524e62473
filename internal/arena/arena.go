// Package arena implements the bucket-backed slot storage underneath a
// veclist. Slots are allocated in contiguous, geometrically growing buckets
// and recycled through an intrusive chain of free slots, so that list nodes
// cost no per-node allocation and neighbours tend to share cache lines.
package arena

import (
	"log/slog"
	"unsafe"
)

// Node is a single slot: the links, an occupancy flag and in-place room for
// one element. A slot's address is stable for the lifetime of its bucket;
// buckets are only released by Release or a shrinking Compact.
//
// Occupied slots are linked into the caller's circular ring through Next and
// Prev. Free slots are threaded through Next only and keep a nil Prev; the
// ring sentinel is therefore the only unoccupied node with a live Prev link,
// which is what lets an iterator tell "end" apart from "erased".
type Node[T any] struct {
	Next, Prev *Node[T]
	Used       bool
	Value      T
}

// Arena owns an ordered sequence of buckets and the free chain over their
// unoccupied slots. One arena is exclusively owned by one list at a time;
// Adopt transfers that ownership wholesale in O(1).
type Arena[T any] struct {
	logger  *slog.Logger
	cfg     Config
	buckets [][]Node[T]

	// The free chain is singly threaded via Node.Next. Head and tail are
	// both tracked so that pop-front, push-front and whole-chain append
	// (bucket seeding, splice adoption) are all O(1).
	freeHead *Node[T]
	freeTail *Node[T]

	capacity int // Total slots across all buckets.
	free     int // Slots currently on the free chain.
}

// Init prepares an empty arena. The config must have been validated.
func (a *Arena[T]) Init(logger *slog.Logger, cfg Config) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a.logger = logger
	a.cfg = cfg
	a.buckets = nil
	a.freeHead, a.freeTail = nil, nil
	a.capacity, a.free = 0, 0
}

// Cap returns the total number of slots, occupied and free.
func (a *Arena[T]) Cap() int {
	return a.capacity
}

// Free returns the number of slots on the free chain.
func (a *Arena[T]) Free() int {
	return a.free
}

// NumBuckets returns the number of allocated buckets.
func (a *Arena[T]) NumBuckets() int {
	return len(a.buckets)
}

// Get removes and returns a slot from the head of the free chain, growing
// the arena first if the chain is empty. The returned slot is unoccupied
// with nil links.
func (a *Arena[T]) Get() *Node[T] {
	if a.freeHead == nil {
		a.grow(1, false)
	}
	n := a.freeHead
	a.freeHead = n.Next
	if a.freeHead == nil {
		a.freeTail = nil
	}
	n.Next = nil
	a.free--
	return n
}

// Put returns a slot to the head of the free chain. The value is zeroed so
// anything it referenced becomes collectable.
func (a *Arena[T]) Put(n *Node[T]) {
	var zero T
	n.Value = zero
	n.Used = false
	n.Prev = nil
	n.Next = a.freeHead
	a.freeHead = n
	if a.freeTail == nil {
		a.freeTail = n
	}
	a.free++
}

// Reserve grows the arena until at least target slots exist, allocating
// exactly what is missing instead of applying the growth factor. Existing
// slots are never relocated.
func (a *Arena[T]) Reserve(target int) {
	if target <= a.capacity {
		return
	}
	a.grow(target-a.capacity, true)
}

// Adopt transplants the donor's buckets, free chain and capacity into a in
// O(1), leaving the donor as a valid empty arena. Occupied donor slots keep
// their addresses and links; relinking them into the receiver's ring is the
// caller's job.
func (a *Arena[T]) Adopt(donor *Arena[T]) {
	if donor == a {
		return
	}
	a.buckets = append(a.buckets, donor.buckets...)
	if donor.freeHead != nil {
		a.appendChain(donor.freeHead, donor.freeTail, donor.free)
	}
	a.capacity += donor.capacity
	donor.buckets = nil
	donor.freeHead, donor.freeTail = nil, nil
	donor.capacity, donor.free = 0, 0
}

// Refill turns every slot in every bucket back into a hole, preserving the
// buckets themselves. Used by a capacity-retaining clear.
func (a *Arena[T]) Refill() {
	a.freeHead, a.freeTail = nil, nil
	a.free = 0
	for _, b := range a.buckets {
		for i := range b {
			b[i] = Node[T]{}
		}
		a.seed(b)
	}
}

// Release drops all buckets and the free chain. Slot addresses handed out
// earlier are dead after this.
func (a *Arena[T]) Release() {
	a.buckets = nil
	a.freeHead, a.freeTail = nil, nil
	a.capacity, a.free = 0, 0
}

// grow allocates one new bucket covering at least need slots and seeds it
// with holes. Unless exact is set, the bucket also holds at least
// capacity*(GrowthFactor-1) slots to keep growth geometric.
func (a *Arena[T]) grow(need int, exact bool) {
	n := max(need, a.minBucketSlots())
	if !exact {
		if g := int(float64(a.capacity) * (a.cfg.GrowthFactor - 1.0)); g > n {
			n = g
		}
	}
	b := make([]Node[T], n)
	a.buckets = append(a.buckets, b)
	a.capacity += n
	a.seed(b)
	a.logger.Debug("arena grew",
		"bucket_slots", n,
		"capacity", a.capacity,
		"buckets", len(a.buckets),
	)
}

// seed threads a bucket's slots into one chain and appends it to the free
// chain tail.
func (a *Arena[T]) seed(b []Node[T]) {
	if len(b) == 0 {
		return
	}
	for i := 0; i < len(b)-1; i++ {
		b[i].Next = &b[i+1]
	}
	b[len(b)-1].Next = nil
	a.appendChain(&b[0], &b[len(b)-1], len(b))
}

// appendChain concatenates a ready-threaded chain of count holes at the free
// chain tail in O(1).
func (a *Arena[T]) appendChain(head, tail *Node[T], count int) {
	if a.freeHead == nil {
		a.freeHead = head
	} else {
		a.freeTail.Next = head
	}
	a.freeTail = tail
	a.free += count
}

// minBucketSlots floors the bucket size at MinBucketSlots slots or
// MinBucketBytes worth of slots, whichever is larger.
func (a *Arena[T]) minBucketSlots() int {
	slotSize := int(unsafe.Sizeof(Node[T]{}))
	n := a.cfg.MinBucketBytes / slotSize
	if n < a.cfg.MinBucketSlots {
		n = a.cfg.MinBucketSlots
	}
	return n
}

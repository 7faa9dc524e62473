package veclist

import (
	"slices"
	"testing"
)

func TestIteratorTraversal(t *testing.T) {
	l := testList(t)
	fill(l, 4)

	var forward []int
	for it := l.Begin(); it != l.End(); it = it.Next() {
		forward = append(forward, it.Value())
	}
	if !slices.Equal(forward, []int{0, 1, 2, 3}) {
		t.Errorf("expected [0 1 2 3], got %v", forward)
	}

	var backward []int
	for it := l.End(); ; {
		it = it.Prev()
		backward = append(backward, it.Value())
		if it == l.Begin() {
			break
		}
	}
	if !slices.Equal(backward, []int{3, 2, 1, 0}) {
		t.Errorf("expected [3 2 1 0], got %v", backward)
	}
}

func TestIteratorEquality(t *testing.T) {
	l := testList(t)
	it := l.PushBack(1)

	if l.Begin() != it {
		t.Error("expected begin to equal the sole element's iterator")
	}
	if l.Begin().Next() != l.End() {
		t.Error("expected next of the last element to equal end")
	}
	if l.End() == it {
		t.Error("expected end to differ from a live element")
	}

	var zero Iterator[int]
	if zero == it {
		t.Error("expected zero iterator to differ from a live element")
	}
}

func TestIteratorEmptyList(t *testing.T) {
	l := testList(t)
	if l.Begin() != l.End() {
		t.Error("expected begin to equal end on an empty list")
	}
}

func TestIteratorRefMutation(t *testing.T) {
	l := testList(t)
	it := l.PushBack(1)

	*it.Ref() = 42
	if got := l.Front(); got != 42 {
		t.Errorf("expected mutation through ref to be visible, got %d", got)
	}
}

func TestIteratorStableAcrossGrowth(t *testing.T) {
	l := testList(t)
	it := l.PushBack(7)
	ref := it.Ref()

	// Force many bucket allocations.
	fill(l, 500)

	if it.Ref() != ref {
		t.Error("expected element address to be stable across growth")
	}
	if got := it.Value(); got != 7 {
		t.Errorf("expected value 7 after growth, got %d", got)
	}
}

func TestIteratorStableAcrossErasureElsewhere(t *testing.T) {
	l := testList(t)
	its := make([]Iterator[int], 0, 12)
	for i := range 12 {
		its = append(its, l.PushBack(i))
	}

	for _, i := range []int{0, 5, 11} {
		l.Erase(its[i])
	}
	// Recycling the holes must not disturb surviving handles.
	fill(l, 3)

	if got := its[6].Value(); got != 6 {
		t.Errorf("expected handle 6 to survive, got %d", got)
	}
	if got := its[6].Prev().Value(); got != 4 {
		t.Errorf("expected predecessor 4, got %d", got)
	}
}

func TestIteratorMisusePanics(t *testing.T) {
	l := testList(t)
	fill(l, 2)
	erased := l.PushBack(9)
	l.Erase(erased)

	var zero Iterator[int]
	testCases := []struct {
		name string
		want string
		fn   func()
	}{
		{"Value of zero iterator", "zero iterator", func() { zero.Value() }},
		{"Next of zero iterator", "zero iterator", func() { zero.Next() }},
		{"Prev of zero iterator", "zero iterator", func() { zero.Prev() }},
		{"Value of end", "end iterator", func() { l.End().Value() }},
		{"Ref of end", "end iterator", func() { l.End().Ref() }},
		{"Next of end", "past end", func() { l.End().Next() }},
		{"Value of erased", "erased", func() { erased.Value() }},
		{"Next of erased", "erased", func() { erased.Next() }},
		{"Prev of erased", "erased", func() { erased.Prev() }},
		{"Prev of begin", "before begin", func() { l.Begin().Prev() }},
		{"Erase end", "end iterator", func() { l.Erase(l.End()) }},
		{"Erase zero iterator", "zero iterator", func() { l.Erase(zero) }},
		{"Erase twice", "already erased", func() { l.Erase(erased) }},
		{"Insert at erased position", "erased position", func() { l.Insert(erased, 1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mustPanic(t, tc.want, tc.fn)
		})
	}
}

func TestIteratorPrevFromEnd(t *testing.T) {
	l := testList(t)
	fill(l, 3)

	if got := l.End().Prev().Value(); got != 2 {
		t.Errorf("expected prev of end to be the last element, got %d", got)
	}

	empty := testList(t)
	mustPanic(t, "before begin", func() { empty.End().Prev() })
}

package veclist

import "cmp"

// Equal reports whether two lists hold the same elements in the same order.
// Lists of different lengths are never equal.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.root.Next, b.root.Next
	for x != &a.root {
		if !eq(x.Value, y.Value) {
			return false
		}
		x, y = x.Next, y.Next
	}
	return true
}

// Compare lexicographically compares two lists, element-wise: the first
// unequal pair decides, and a shorter prefix orders before a longer list.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares element pairs with compare.
func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], compare func(T1, T2) int) int {
	x, y := a.root.Next, b.root.Next
	for x != &a.root && y != &b.root {
		if c := compare(x.Value, y.Value); c != 0 {
			return c
		}
		x, y = x.Next, y.Next
	}
	switch {
	case x != &a.root:
		return +1
	case y != &b.root:
		return -1
	}
	return 0
}

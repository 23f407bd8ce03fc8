package FordJohnson

import "PmergeMe/FordJohnson/chain"

// Comparable is a type carrying its own total order. CompareTo returns a
// negative number, zero or a positive number when the receiver is less than,
// equal to or greater than o.
type Comparable[T any] interface {
	CompareTo(o T) int
}

func SortFunc[T Comparable[T]](a []T) {
	SortFuncWith(a, chain.KindVector)
}

func SortFuncWith[T Comparable[T]](a []T, kind chain.Kind) Stats {
	return sortSlice(a, func(x, y T) bool { return x.CompareTo(y) < 0 }, kind)
}

func IsSortedFunc[T Comparable[T]](a []T) bool {
	for i := len(a) - 1; i > 0; i-- {
		if a[i].CompareTo(a[i-1]) < 0 {
			return false
		}
	}
	return true
}

package FordJohnson

import (
	"PmergeMe/FordJohnson/chain"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Stats describes the work done by one sort call.
type Stats struct {
	Elements    int
	Comparisons int // element comparisons, pairing and searching
	Insertions  int // elements placed into a main chain by search or at the head
	Levels      int // recursion levels; 0 when there was nothing to sort
}

type sorter[T any] struct {
	less  func(a, b T) bool
	kind  chain.Kind
	stats *Stats
}

func (s *sorter[T]) lessCounted(a, b T) bool {
	s.stats.Comparisons++
	return s.less(a, b)
}

// Sort sorts a in ascending order by merge-insertion on a vector main chain.
// Floating point NaNs have no place in a total order and give an
// unspecified permutation.
func Sort[T constraints.Ordered](a []T) {
	SortWith(a, chain.KindVector)
}

// SortWith sorts a in place, building the main chain on the given container.
func SortWith[T constraints.Ordered](a []T, kind chain.Kind) Stats {
	return sortSlice(a, func(x, y T) bool { return x < y }, kind)
}

// Sorted returns a sorted copy of a.
func Sorted[T constraints.Ordered](a []T) []T {
	c := slices.Clone(a)
	Sort(c)
	return c
}

func sortSlice[T any](a []T, less func(x, y T) bool, kind chain.Kind) Stats {
	st := Stats{Elements: len(a)}
	if len(a) < 2 {
		return st
	}
	s := &sorter[T]{less: less, kind: kind, stats: &st}
	level := make([]node[T], len(a))
	for i, v := range a {
		level[i] = node[T]{v: v, id: i}
	}
	main := s.mergeInsertion(level, 1)
	if main.Len() != len(a) {
		panic("assert main.Len() == len(a)")
	}
	for i := range a {
		a[i] = main.At(i).v
	}
	return st
}

/**
mergeInsertion sorts one recursion level and returns its main chain.
  level - the nodes to sort; their ids are what the caller needs back
  depth - 1 for the top level
The winners of the level's pairs are sorted first, by recursion when there
are two or more of them, then the losers and the straggler are inserted.
*/
func (s *sorter[T]) mergeInsertion(level []node[T], depth int) chain.Sequence[node[T]] {
	if depth > s.stats.Levels {
		s.stats.Levels = depth
	}
	winners, pairs, straggler, odd := s.formPairs(level)
	if pairs == nil {
		return s.fromNodes(winners)
	}

	var sortedWinners chain.Sequence[node[T]]
	if len(winners) <= 1 {
		sortedWinners = s.fromNodes(winners)
	} else {
		sortedWinners = s.mergeInsertion(winners, depth+1)
	}

	main, pend := s.assemblePend(sortedWinners, pairs, len(level))
	s.insertPend(main, pend)
	if odd {
		s.insertStraggler(main, straggler)
	}
	return main
}

func (s *sorter[T]) fromNodes(nodes []node[T]) chain.Sequence[node[T]] {
	seq := chain.New[node[T]](s.kind, len(nodes))
	for _, n := range nodes {
		chain.Append(seq, n)
	}
	return seq
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted[T constraints.Ordered](a []T) bool {
	for i := len(a) - 1; i > 0; i-- {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

package FordJohnson

import "PmergeMe/FordJohnson/chain"

const firstJacobsthalIndex = 3

/**
insertPend moves every pend entry into the main chain.
The first loser goes to the front unconditionally: it is paired with the
smallest winner, which sits at index 0. The rest are inserted in batches
bounded by consecutive Jacobsthal numbers (3,2 then 5,4 then 11..6 ...),
descending inside a batch, so each search stays within a prefix of
2^k - 1 elements.
  main - the main chain holding this level's sorted winners
  pend - the losers with the index of their winner; bounds are updated in place
*/
func (s *sorter[T]) insertPend(main chain.Sequence[node[T]], pend []pendEntry[T]) {
	if len(pend) == 0 {
		return
	}
	main.Insert(0, pend[0].loser)
	s.stats.Insertions++

	jacobIndex := firstJacobsthalIndex
	curr := Jacobsthal(jacobIndex)
	jacobIndex++
	prev := 1
	for prev < len(pend) {
		if curr > len(pend) {
			curr = len(pend)
		}
		for i := curr; i > prev; i-- {
			e := pend[i-1]
			if e.bound < 0 || e.bound > main.Len() {
				panic("assert 0 <= bound && bound <= main.Len()")
			}
			pos := s.lowerBound(main, e.bound, e.loser.v)
			main.Insert(pos, e.loser)
			s.stats.Insertions++
			repairBounds(pend, pos)
		}
		prev = curr
		curr = Jacobsthal(jacobIndex)
		jacobIndex++
	}
}

// insertStraggler places the odd element of a level with a search over the
// whole chain; it has no winner to bound it.
func (s *sorter[T]) insertStraggler(main chain.Sequence[node[T]], straggler node[T]) {
	pos := s.lowerBound(main, main.Len(), straggler.v)
	main.Insert(pos, straggler)
	s.stats.Insertions++
}

// lowerBound returns the first index in [0, hi) whose value is not less than
// v, or hi when there is none.
func (s *sorter[T]) lowerBound(main chain.Sequence[node[T]], hi int, v T) int {
	lo := 0
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.lessCounted(main.At(mid).v, v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// repairBounds shifts every bound at or after pos, processed entries
// included, after an insertion at pos.
func repairBounds[T any](pend []pendEntry[T], pos int) {
	for i := range pend {
		if pend[i].bound >= pos {
			pend[i].bound++
		}
	}
}

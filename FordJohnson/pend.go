package FordJohnson

import "PmergeMe/FordJohnson/chain"

// pendEntry is a loser waiting for insertion. bound is the current index of
// its winner in the main chain, so the loser belongs somewhere in [0, bound).
type pendEntry[T any] struct {
	loser node[T]
	bound int
}

// assemblePend rebuilds this level's main chain from the sorted winners and
// pairs every winner with its own loser through the pair index carried in
// the winner's id. size is the final length of the level, used to size the
// chain once.
func (s *sorter[T]) assemblePend(sorted chain.Sequence[node[T]], pairs []pair[T], size int) (chain.Sequence[node[T]], []pendEntry[T]) {
	if sorted.Len() != len(pairs) {
		panic("assert sorted.Len() == len(pairs)")
	}
	main := chain.New[node[T]](s.kind, size)
	pend := make([]pendEntry[T], 0, len(pairs))
	consumed := make([]bool, len(pairs))
	for i := 0; i < sorted.Len(); i++ {
		k := sorted.At(i).id
		if consumed[k] {
			panic("assert pair consumed once")
		}
		consumed[k] = true
		chain.Append(main, pairs[k].winner)
		// +1: the head insertion occupies index 0 before any bound is used
		pend = append(pend, pendEntry[T]{loser: pairs[k].loser, bound: i + 1})
	}
	return main, pend
}

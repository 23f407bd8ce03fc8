package FordJohnson

// node is an element travelling through one recursion level. At the top
// level id is the input position; below it, id is the formation index of the
// pair the winner was taken from.
type node[T any] struct {
	v  T
	id int
}

type pair[T any] struct {
	winner node[T]
	loser  node[T]
}

/**
formPairs splits a level into adjacent pairs.
  level - the nodes of the current level, in the order received
returns:
  winners   - the larger member of each pair, id set to the pair index
  pairs     - (winner, loser) per pair, carrying the level's own ids
  straggler - the trailing node when len(level) is odd (odd reports it)
With fewer than two nodes the level is returned as winners and pairs is nil.
On equal values the left node of the pair wins.
*/
func (s *sorter[T]) formPairs(level []node[T]) (winners []node[T], pairs []pair[T], straggler node[T], odd bool) {
	n := len(level)
	if n <= 1 {
		return level, nil, straggler, false
	}
	if n%2 != 0 {
		straggler = level[n-1]
		odd = true
		n--
	}
	winners = make([]node[T], 0, n/2)
	pairs = make([]pair[T], 0, n/2)
	for i := 0; i < n; i += 2 {
		p := pair[T]{winner: level[i], loser: level[i+1]}
		if s.lessCounted(level[i].v, level[i+1].v) {
			p.winner, p.loser = p.loser, p.winner
		}
		winners = append(winners, node[T]{v: p.winner.v, id: len(pairs)})
		pairs = append(pairs, p)
	}
	return winners, pairs, straggler, odd
}

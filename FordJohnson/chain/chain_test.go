package chain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents[E any](s Sequence[E]) []E {
	out := make([]E, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.At(i))
	}
	return out
}

func TestInsertPositions(t *testing.T) {
	for _, kind := range []Kind{KindVector, KindDeque} {
		t.Run(kind.String(), func(t *testing.T) {
			s := New[int](kind, 0)
			Append(s, 2)
			Append(s, 4)
			s.Insert(0, 1)         // front
			s.Insert(2, 3)         // middle
			s.Insert(s.Len(), 5)   // back
			s.Insert(s.Len()-1, 9) // just before the back
			assert.Equal(t, []int{1, 2, 3, 4, 9, 5}, contents(s))
		})
	}
}

// Random inserts checked against a plain slice model, enough of them to
// force several grows and wrap the deque ring in both directions.
func TestInsertMatchesModel(t *testing.T) {
	rand.Seed(42)
	for _, kind := range []Kind{KindVector, KindDeque} {
		t.Run(kind.String(), func(t *testing.T) {
			s := New[int](kind, 3)
			var model []int
			for n := 0; n < 500; n++ {
				i := rand.Intn(len(model) + 1)
				s.Insert(i, n)
				model = append(model[:i], append([]int{n}, model[i:]...)...)
			}
			require.Equal(t, len(model), s.Len())
			assert.Equal(t, model, contents(s))
		})
	}
}

func TestDequeEnds(t *testing.T) {
	d := NewDeque[string](0)
	d.PushBack("b")
	d.PushFront("a")
	d.PushBack("c")
	for i := 0; i < 20; i++ {
		d.PushFront("x")
		assert.Equal(t, "x", d.PopFront())
	}
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "c", d.PopBack())
	assert.Equal(t, "a", d.PopFront())
	assert.Equal(t, "b", d.At(0))
	assert.Equal(t, 1, d.Len())
}

func TestOutOfRangePanics(t *testing.T) {
	for _, kind := range []Kind{KindVector, KindDeque} {
		s := New[int](kind, 4)
		assert.Panics(t, func() { s.Insert(1, 0) }, kind.String())
		assert.Panics(t, func() { s.Insert(-1, 0) }, kind.String())
	}
	assert.Panics(t, func() { NewDeque[int](0).At(0) })
	assert.Panics(t, func() { NewDeque[int](0).PopBack() })
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Deque")
	require.NoError(t, err)
	assert.Equal(t, KindDeque, k)

	k, err = ParseKind(" vector ")
	require.NoError(t, err)
	assert.Equal(t, KindVector, k)

	_, err = ParseKind("list")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), `"list"`)
}

func TestRoundUpPow2(t *testing.T) {
	assert.Equal(t, minDequeCap, roundUpPow2(1))
	assert.Equal(t, 16, roundUpPow2(9))
	assert.Equal(t, 16, roundUpPow2(16))
	assert.Equal(t, 32, roundUpPow2(17))
}

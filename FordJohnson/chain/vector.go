package chain

import "golang.org/x/exp/slices"

// Vector is a contiguous sequence. Insertion moves every element after i.
type Vector[E any] struct {
	a []E
}

func NewVector[E any](capacity int) *Vector[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[E]{a: make([]E, 0, capacity)}
}

func (v *Vector[E]) Len() int { return len(v.a) }

func (v *Vector[E]) At(i int) E { return v.a[i] }

func (v *Vector[E]) Insert(i int, e E) {
	if i < 0 || i > len(v.a) {
		panic("assert 0 <= i && i <= len")
	}
	v.a = slices.Insert(v.a, i, e)
}

// Slice exposes the backing array; it is invalidated by the next Insert.
func (v *Vector[E]) Slice() []E { return v.a }

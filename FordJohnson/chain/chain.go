package chain

import (
	"errors"
	"fmt"
	"strings"
)

// Sequence is the capability set the merge-insertion main chain needs:
// indexed read, insert at a position and length.
type Sequence[E any] interface {
	Len() int
	At(i int) E
	Insert(i int, e E)
}

type Kind int

const (
	KindVector Kind = iota
	KindDeque
)

var ErrUnknownKind = errors.New("unknown container kind")

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindDeque:
		return "deque"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names printed by Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vector":
		return KindVector, nil
	case "deque":
		return KindDeque, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns an empty sequence of the given kind able to hold capacity
// elements without growing.
func New[E any](kind Kind, capacity int) Sequence[E] {
	switch kind {
	case KindDeque:
		return NewDeque[E](capacity)
	case KindVector:
		return NewVector[E](capacity)
	}
	panic("assert kind == KindVector || kind == KindDeque")
}

// Append is shorthand for Insert at Len.
func Append[E any](s Sequence[E], e E) {
	s.Insert(s.Len(), e)
}

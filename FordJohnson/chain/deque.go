package chain

import "math/bits"

const minDequeCap = 8

// Deque is a ring buffer addressable from both ends. An insertion moves the
// shorter of the two runs on either side of the insertion point, so inserts
// near the front are as cheap as inserts near the back.
type Deque[E any] struct {
	buf  []E // len(buf) is zero or a power of two
	head int
	n    int
}

func NewDeque[E any](capacity int) *Deque[E] {
	d := &Deque[E]{}
	if capacity > 0 {
		d.buf = make([]E, roundUpPow2(capacity))
	}
	return d
}

func roundUpPow2(n int) int {
	if n <= minDequeCap {
		return minDequeCap
	}
	return 1 << bits.Len(uint(n-1))
}

func (d *Deque[E]) Len() int { return d.n }

func (d *Deque[E]) slot(i int) int { return (d.head + i) & (len(d.buf) - 1) }

func (d *Deque[E]) At(i int) E {
	if i < 0 || i >= d.n {
		panic("assert 0 <= i && i < len")
	}
	return d.buf[d.slot(i)]
}

func (d *Deque[E]) Insert(i int, e E) {
	if i < 0 || i > d.n {
		panic("assert 0 <= i && i <= len")
	}
	if d.n == len(d.buf) {
		d.grow()
	}
	if i < d.n>>1 {
		// open a slot before the head and pull the first i elements down
		d.head = (d.head - 1) & (len(d.buf) - 1)
		for j := 0; j < i; j++ {
			d.buf[d.slot(j)] = d.buf[d.slot(j+1)]
		}
	} else {
		for j := d.n; j > i; j-- {
			d.buf[d.slot(j)] = d.buf[d.slot(j-1)]
		}
	}
	d.buf[d.slot(i)] = e
	d.n++
}

func (d *Deque[E]) PushBack(e E) { d.Insert(d.n, e) }

func (d *Deque[E]) PushFront(e E) { d.Insert(0, e) }

func (d *Deque[E]) PopFront() E {
	if d.n == 0 {
		panic("assert len > 0")
	}
	var zero E
	e := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.n--
	return e
}

func (d *Deque[E]) PopBack() E {
	if d.n == 0 {
		panic("assert len > 0")
	}
	var zero E
	s := d.slot(d.n - 1)
	e := d.buf[s]
	d.buf[s] = zero
	d.n--
	return e
}

// grow doubles the buffer and unwraps the ring so that head is 0.
func (d *Deque[E]) grow() {
	size := len(d.buf) << 1
	if size == 0 {
		size = minDequeCap
	}
	buf := make([]E, size)
	if d.n > 0 {
		if d.head+d.n <= len(d.buf) {
			copy(buf, d.buf[d.head:d.head+d.n])
		} else {
			k := copy(buf, d.buf[d.head:])
			copy(buf[k:], d.buf[:d.n-k])
		}
	}
	d.buf = buf
	d.head = 0
}

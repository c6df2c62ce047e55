// Package trail keeps the recent path of the moon for the dashed trail.
package trail

// Capacity is the number of positions kept before the oldest is evicted.
const Capacity = 250

type Point struct {
	X, Y float64
}

// Buffer is a bounded FIFO of points backed by a fixed ring.
type Buffer struct {
	buf  []Point
	head int
	n    int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Buffer{buf: make([]Point, capacity)}
}

// Append adds p at the tail, evicting the head once the buffer is full.
func (b *Buffer) Append(p Point) {
	c := len(b.buf)
	if b.n < c {
		b.buf[(b.head+b.n)%c] = p
		b.n++
		return
	}
	b.buf[b.head] = p
	b.head = (b.head + 1) % c
}

func (b *Buffer) Clear() {
	b.head, b.n = 0, 0
}

func (b *Buffer) Len() int { return b.n }

func (b *Buffer) Cap() int { return len(b.buf) }

// Points returns the buffered points oldest first.
func (b *Buffer) Points() []Point {
	out := make([]Point, b.n)
	for i := range out {
		out[i] = b.buf[(b.head+i)%len(b.buf)]
	}
	return out
}

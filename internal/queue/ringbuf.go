package queue

// minRingSize is the initial capacity of a ring.
const minRingSize = 64

// ring is an unbounded FIFO backed by a power of two circular buffer.
//
// It is not safe for concurrent use. Shared owns one ring and only
// touches it while holding its lock.
type ring[T any] struct {
	buf  []T
	mask uint64
	head uint64 // next slot to read
	tail uint64 // next slot to write
}

// newRing creates a ring with at least size slots.
// Size is rounded up to the next power of 2.
func newRing[T any](size int) *ring[T] {
	n := uint64(minRingSize)
	for n < uint64(size) {
		n <<= 1
	}
	return &ring[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

func (r *ring[T]) len() int {
	return int(r.tail - r.head)
}

func (r *ring[T]) empty() bool {
	return r.tail == r.head
}

func (r *ring[T]) push(v T) {
	if r.tail-r.head == uint64(len(r.buf)) {
		r.grow()
	}
	r.buf[r.tail&r.mask] = v
	r.tail++
}

func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.empty() {
		return zero, false
	}
	i := r.head & r.mask
	v := r.buf[i]
	r.buf[i] = zero
	r.head++
	return v, true
}

// reset drops all items and returns how many were dropped.
func (r *ring[T]) reset() int {
	n := r.len()
	clear(r.buf)
	r.head, r.tail = 0, 0
	return n
}

// grow doubles the buffer, keeping items in FIFO order.
func (r *ring[T]) grow() {
	n := r.len()
	buf := make([]T, len(r.buf)*2)
	for i := 0; i < n; i++ {
		buf[i] = r.buf[(r.head+uint64(i))&r.mask]
	}
	r.buf = buf
	r.mask = uint64(len(buf)) - 1
	r.head = 0
	r.tail = uint64(n)
}

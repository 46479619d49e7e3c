package queue

import "sync"

// Shared is a FIFO protected by a single lock for its entire lifetime.
//
// Every observation or mutation of the underlying sequence happens while
// that lock is held. Create one with New and share the pointer between the
// goroutines that produce and consume.
type Shared[T any] struct {
	mu    sync.Locker
	items *ring[T]
	probe *Probe
}

// Option configures a Shared queue.
type Option func(*options)

type options struct {
	locker sync.Locker
	probe  *Probe
	size   int
}

// WithLocker sets the lock guarding the queue. The default is a sync.Mutex.
func WithLocker(l sync.Locker) Option {
	return func(o *options) {
		o.locker = l
	}
}

// WithProbe instruments every critical section with p.
func WithProbe(p *Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}

// WithCapacity preallocates room for n items.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// New creates an empty Shared queue.
func New[T any](opts ...Option) *Shared[T] {
	o := options{size: minRingSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locker == nil {
		o.locker = new(sync.Mutex)
	}
	return &Shared[T]{
		mu:    o.locker,
		items: newRing[T](o.size),
		probe: o.probe,
	}
}

// Push adds an item to the back of the queue.
func (q *Shared[T]) Push(v T) {
	g := q.Acquire()
	g.Push(v)
	g.Release()
}

// Pop removes and returns the front item.
// Returns ErrEmpty if the queue is empty.
func (q *Shared[T]) Pop() (T, error) {
	g := q.Acquire()
	v, err := g.Pop()
	g.Release()
	return v, err
}

// IsEmpty reports whether the queue holds no items at this instant.
// The answer may be stale as soon as the lock is released.
func (q *Shared[T]) IsEmpty() bool {
	g := q.Acquire()
	empty := g.Empty()
	g.Release()
	return empty
}

// Len returns the number of items at this instant.
func (q *Shared[T]) Len() int {
	g := q.Acquire()
	n := g.Len()
	g.Release()
	return n
}

// Acquire takes the queue lock and returns a handle to it.
//
// The caller must call Release exactly once on every path; extra calls are
// no-ops, so deferring Release and also releasing early is fine.
func (q *Shared[T]) Acquire() Guard[T] {
	q.mu.Lock()
	if q.probe != nil {
		q.probe.Enter()
	}
	return Guard[T]{q: q, held: true}
}

// Do runs fn with the queue lock held and releases it when fn returns.
func (q *Shared[T]) Do(fn func(g *Guard[T])) {
	g := q.Acquire()
	defer g.Release()
	fn(&g)
}

// Probe returns the probe the queue was created with, or nil.
func (q *Shared[T]) Probe() *Probe {
	return q.probe
}

var _ Queue[int] = (*Shared[int])(nil)

// Package queue provides the shared work queue used by the lock scope
// benchmarks.
//
// Shared is a FIFO guarded by exactly one lock. Push, Pop and IsEmpty each
// take and release that lock, so every individual call is atomic with
// respect to the others. No method composes several steps atomically: a
// caller that needs "check, then pop" under one acquisition uses a Guard,
// obtained from Acquire or Do.
//
// # Guards
//
// A Guard is a lock handle. Release may be called before the end of the
// surrounding function and is idempotent, so the usual pattern is:
//
//	g := q.Acquire()
//	defer g.Release()
//	if g.Empty() {
//		return
//	}
//	v, _ := g.Pop()
//	g.Release() // early release; the deferred call is a no-op
//	process(v)
//
// # Empty pops
//
// Popping from an empty queue is not a failure. Pop returns ErrEmpty, a
// control flow signal shared with the iox ecosystem, and callers are
// expected to treat it as "no work right now".
package queue

import "code.hybscloud.com/iox"

// Queue is a FIFO safe for concurrent use by multiple producers and
// multiple consumers.
type Queue[T any] interface {
	// Push appends an item to the back of the queue.
	Push(T)

	// Pop removes and returns the front item.
	// Returns ErrEmpty if the queue is empty.
	Pop() (T, error)

	// IsEmpty reports whether the queue currently holds no items.
	IsEmpty() bool
}

// ErrEmpty is returned by Pop when there is nothing to remove.
//
// This is an alias for [iox.ErrWouldBlock]: the operation could not
// proceed right now, which is not an error condition.
var ErrEmpty = iox.ErrWouldBlock

// IsEmpty reports whether err signals an empty queue.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

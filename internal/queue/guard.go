package queue

// Guard is a handle to a held queue lock.
//
// Its methods operate on the queue without taking the lock again, which is
// what lets a caller compose "check empty, then pop" into one critical
// section. A Guard must not be used after Release.
type Guard[T any] struct {
	q    *Shared[T]
	held bool
}

// Release unlocks the queue. It is a no-op if already released.
func (g *Guard[T]) Release() {
	if !g.held {
		return
	}
	g.held = false
	if g.q.probe != nil {
		g.q.probe.Exit()
	}
	g.q.mu.Unlock()
}

// Held reports whether the guard still holds the lock.
func (g *Guard[T]) Held() bool {
	return g.held
}

// Empty reports whether the queue holds no items.
func (g *Guard[T]) Empty() bool {
	g.mustHold()
	return g.q.items.empty()
}

// Len returns the number of queued items.
func (g *Guard[T]) Len() int {
	g.mustHold()
	return g.q.items.len()
}

// Push appends v to the back of the queue.
func (g *Guard[T]) Push(v T) {
	g.mustHold()
	g.q.items.push(v)
}

// Pop removes and returns the front item.
// Returns ErrEmpty if the queue is empty.
func (g *Guard[T]) Pop() (T, error) {
	g.mustHold()
	v, ok := g.q.items.pop()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Clear removes every queued item and returns how many were removed.
func (g *Guard[T]) Clear() int {
	g.mustHold()
	return g.q.items.reset()
}

func (g *Guard[T]) mustHold() {
	if !g.held {
		panic("queue: use of released Guard")
	}
}

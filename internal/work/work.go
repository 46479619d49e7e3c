// Package work provides the work items and the synthetic per-item
// processing used by the lock scope benchmarks.
//
// The synthetic work is a deterministic CPU-bound loop. Its duration
// dominates each trial, so the time spent holding the queue lock is small
// relative to it and any difference between consume strategies shows up as
// contention rather than as extra work.
package work

import "strconv"

// Item is a single unit of work. It is created during queue population
// and never mutated afterwards.
type Item struct {
	ID      int
	Payload string
}

// NewItem returns the item for index i.
func NewItem(i int) Item {
	return Item{ID: i, Payload: "Message " + strconv.Itoa(i)}
}

// Messages returns n items with indexes 0..n-1 in push order.
func Messages(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = NewItem(i)
	}
	return items
}

// Processor handles items removed from the shared queue.
//
// Implementations are used by exactly one worker goroutine and must only
// touch worker-local state.
type Processor interface {
	Process(Item)
}

// Factory builds one Processor per worker.
type Factory func() Processor

package consume

import (
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// ScopedRelease copies the item out of a nested function that holds the
// lock; the release happens when that function returns.
type ScopedRelease struct{}

// Name implements Strategy.
func (ScopedRelease) Name() string { return KindScopedRelease.String() }

// ConsumeOne implements Strategy.
func (ScopedRelease) ConsumeOne(q *queue.Shared[work.Item], p work.Processor) bool {
	it, ok := func() (work.Item, bool) {
		g := q.Acquire()
		defer g.Release()

		if g.Empty() {
			return work.Item{}, false
		}
		it, _ := g.Pop()
		return it, true
	}()
	if !ok {
		return false
	}

	p.Process(it)
	return true
}

// ScopedCallback is ScopedRelease expressed through queue.Shared.Do, so
// the queue owns both acquisition and release.
type ScopedCallback struct{}

// Name implements Strategy.
func (ScopedCallback) Name() string { return KindScopedCallback.String() }

// ConsumeOne implements Strategy.
func (ScopedCallback) ConsumeOne(q *queue.Shared[work.Item], p work.Processor) bool {
	var (
		it work.Item
		ok bool
	)
	q.Do(func(g *queue.Guard[work.Item]) {
		if g.Empty() {
			return
		}
		it, _ = g.Pop()
		ok = true
	})
	if !ok {
		return false
	}

	p.Process(it)
	return true
}

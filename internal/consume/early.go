package consume

import (
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// EarlyRelease holds one guard for the whole call and releases it by hand
// immediately after the pop, before processing.
type EarlyRelease struct{}

// Name implements Strategy.
func (EarlyRelease) Name() string { return KindEarlyRelease.String() }

// ConsumeOne implements Strategy.
func (EarlyRelease) ConsumeOne(q *queue.Shared[work.Item], p work.Processor) bool {
	g := q.Acquire()
	defer g.Release()

	if g.Empty() {
		return false
	}
	it, _ := g.Pop()
	g.Release()

	p.Process(it)
	return true
}

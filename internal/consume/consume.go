// Package consume provides the strategies compared by the lock scope
// benchmarks.
//
// Every strategy performs the same steps: acquire the queue lock, check
// for emptiness, pop the front item, release the lock and process the item
// outside the lock. They differ only in how and when the release happens:
//   - EarlyRelease: one guard for the whole call, released by hand right
//     after the pop (a deferred release covers the empty path)
//   - ScopedRelease: the check and pop live in a nested function whose
//     deferred release runs when it returns
//   - ScopedCallback: the check and pop run inside queue.Shared.Do, which
//     owns the acquisition and the release
//
// Finding the queue empty is the normal outcome of losing a race with
// another worker. ConsumeOne then returns false without processing.
package consume

import (
	"fmt"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// Strategy pops one item from a shared queue and processes it.
//
// Implementations are stateless and safe for concurrent use; all mutable
// state lives in the queue and the per-worker Processor.
type Strategy interface {
	// Name returns a short identifier used in reports.
	Name() string

	// ConsumeOne processes at most one item.
	// Returns true if an item was removed and processed.
	ConsumeOne(q *queue.Shared[work.Item], p work.Processor) bool
}

// Kind tags a Strategy.
type Kind int

const (
	KindEarlyRelease Kind = iota
	KindScopedRelease
	KindScopedCallback
)

func (k Kind) String() string {
	switch k {
	case KindEarlyRelease:
		return "early-release"
	case KindScopedRelease:
		return "scoped-release"
	case KindScopedCallback:
		return "scoped-callback"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns the Strategy for k.
func New(k Kind) (Strategy, error) {
	switch k {
	case KindEarlyRelease:
		return EarlyRelease{}, nil
	case KindScopedRelease:
		return ScopedRelease{}, nil
	case KindScopedCallback:
		return ScopedCallback{}, nil
	default:
		return nil, fmt.Errorf("consume: unknown strategy %v", k)
	}
}

// All returns the strategies in trial order.
func All() []Strategy {
	return []Strategy{EarlyRelease{}, ScopedRelease{}, ScopedCallback{}}
}

// ByName returns the strategy whose Name is name.
func ByName(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("consume: unknown strategy %q", name)
}

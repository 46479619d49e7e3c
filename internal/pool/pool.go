// Package pool runs a fixed number of workers against a shared queue.
//
// Each worker loops: check whether the queue is non-empty, and if so call
// the strategy's ConsumeOne. The check and the pop inside ConsumeOne are
// separate lock acquisitions, so a worker may see work, lose the race for
// it and find the queue empty. That re-check is part of what the
// benchmarks measure and is counted in Stats.EmptyPops.
//
// Workers poll without blocking and exit on the first empty observation.
// This is only correct because the queue is fully populated before Run
// and nothing is pushed while it runs.
package pool

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/consume"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// Stats summarises one Run.
type Stats struct {
	Workers   int
	Processed int64  // successful ConsumeOne calls
	EmptyPops int64  // ConsumeOne calls that lost the race
	Checksum  uint64 // combined synthetic work result
}

// summer is implemented by processors that expose their accumulated
// result, such as work.Burner.
type summer interface {
	Sum() uint64
}

// Run starts n workers and blocks until every one of them has exited.
//
// newProcessor is called once per worker. Goroutine start and join are
// included in the caller's timing, identically for every strategy.
func Run(n int, q *queue.Shared[work.Item], s consume.Strategy, newProcessor work.Factory) Stats {
	if n < 1 {
		n = 1
	}

	var (
		processed atomix.Int64
		empty     atomix.Int64
		checksum  atomix.Uint64
	)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			p := newProcessor()
			var done, lost int64
			for !q.IsEmpty() {
				if s.ConsumeOne(q, p) {
					done++
				} else {
					lost++
				}
			}
			processed.Add(done)
			empty.Add(lost)
			if sp, ok := p.(summer); ok {
				checksum.Add(sp.Sum())
			}
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	return Stats{
		Workers:   n,
		Processed: processed.Load(),
		EmptyPops: empty.Load(),
		Checksum:  checksum.Load(),
	}
}

// Package bench runs one timed trial per consume strategy.
//
// A trial populates the shared queue under its lock, times a worker pool
// draining it and then clears any leftover items so the next trial starts
// from an empty queue. Each strategy runs exactly once; there is no
// warm-up and no repetition.
package bench

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/consume"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/pool"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// Params are the fixed inputs of every trial.
type Params struct {
	Workers    int
	Messages   int
	Iterations int
}

// Trial is the outcome of one strategy run.
type Trial struct {
	Strategy string
	Elapsed  time.Duration // microsecond resolution
	Stats    pool.Stats
	Drained  int // items still queued when the pool returned
}

// Consumed reports whether every populated item was either processed or
// drained, and none twice.
func (t Trial) Consumed(messages int) bool {
	return t.Stats.Processed+int64(t.Drained) == int64(messages)
}

// Runner executes trials against one shared queue.
type Runner struct {
	q      *queue.Shared[work.Item]
	params Params
	now    func() time.Time
}

// NewRunner creates a Runner that reuses q for every trial.
func NewRunner(q *queue.Shared[work.Item], p Params) *Runner {
	return &Runner{q: q, params: p, now: time.Now}
}

// Params returns the trial parameters.
func (r *Runner) Params() Params {
	return r.params
}

// RunTrial populates the queue, drains it with the worker pool using s and
// returns the elapsed wall-clock time of the pool run.
func (r *Runner) RunTrial(s consume.Strategy) Trial {
	r.populate()

	start := r.now()
	stats := pool.Run(r.params.Workers, r.q, s, work.BurnerFactory(r.params.Iterations))
	end := r.now()

	drained := r.drain()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	t := Trial{
		Strategy: s.Name(),
		Elapsed:  elapsed.Truncate(time.Microsecond),
		Stats:    stats,
		Drained:  drained,
	}

	logx.Infow("trial complete",
		logx.Field("strategy", t.Strategy),
		logx.Field("elapsedMicros", t.Elapsed.Microseconds()),
		logx.Field("processed", stats.Processed),
		logx.Field("emptyPops", stats.EmptyPops),
		logx.Field("drained", drained))
	if !t.Consumed(r.params.Messages) {
		logx.Errorw("exactly-once accounting mismatch",
			logx.Field("strategy", t.Strategy),
			logx.Field("messages", r.params.Messages),
			logx.Field("processed", stats.Processed),
			logx.Field("drained", drained))
	}

	return t
}

// RunAll runs every strategy in order and returns their trials.
func (r *Runner) RunAll(strategies []consume.Strategy) []Trial {
	trials := make([]Trial, 0, len(strategies))
	for _, s := range strategies {
		trials = append(trials, r.RunTrial(s))
	}
	return trials
}

// populate pushes all messages in one critical section.
func (r *Runner) populate() {
	g := r.q.Acquire()
	defer g.Release()
	for i := 0; i < r.params.Messages; i++ {
		g.Push(work.NewItem(i))
	}
}

// drain clears leftovers so the next trial starts empty.
func (r *Runner) drain() int {
	g := r.q.Acquire()
	defer g.Release()
	return g.Clear()
}

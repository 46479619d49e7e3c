package pool_test

import (
	"testing"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/consume"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/pool"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkStats pool.Stats

// Drain 1000 light items with 8 workers per strategy

func BenchmarkRun_EarlyRelease(b *testing.B) {
	benchmarkRun(b, consume.EarlyRelease{})
}

func BenchmarkRun_ScopedRelease(b *testing.B) {
	benchmarkRun(b, consume.ScopedRelease{})
}

func BenchmarkRun_ScopedCallback(b *testing.B) {
	benchmarkRun(b, consume.ScopedCallback{})
}

func benchmarkRun(b *testing.B, s consume.Strategy) {
	q := queue.New[work.Item](queue.WithCapacity(1000))
	items := work.Messages(1000)
	factory := work.BurnerFactory(1000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for _, it := range items {
			q.Push(it)
		}
		b.StartTimer()
		sinkStats = pool.Run(8, q, s, factory)
	}
}

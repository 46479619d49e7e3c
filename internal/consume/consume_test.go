package consume_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/consume"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

// recorder remembers what it processed and whether the queue lock was
// held at the time.
type recorder struct {
	probe    *queue.Probe
	items    []work.Item
	heldOnce bool
}

func (r *recorder) Process(it work.Item) {
	if r.probe != nil && r.probe.Inside() != 0 {
		r.heldOnce = true
	}
	r.items = append(r.items, it)
}

func TestStrategies_ProcessOutsideLock(t *testing.T) {
	for _, s := range consume.All() {
		t.Run(s.Name(), func(t *testing.T) {
			p := queue.NewProbe()
			q := queue.New[work.Item](queue.WithProbe(p))
			for _, it := range work.Messages(5) {
				q.Push(it)
			}

			r := &recorder{probe: p}
			for i := 0; i < 5; i++ {
				if !s.ConsumeOne(q, r) {
					t.Fatalf("expected ConsumeOne() = true for item %d", i)
				}
			}

			if r.heldOnce {
				t.Error("expected Process to run with the lock released")
			}
			if p.Inside() != 0 {
				t.Errorf("expected lock released after ConsumeOne, inside=%d", p.Inside())
			}
			for i, it := range r.items {
				if it.ID != i {
					t.Errorf("FIFO violation: expected ID %d, got %d", i, it.ID)
				}
			}
			if !q.IsEmpty() {
				t.Error("expected queue to be empty")
			}
		})
	}
}

func TestStrategies_EmptyIsNoop(t *testing.T) {
	for _, s := range consume.All() {
		t.Run(s.Name(), func(t *testing.T) {
			p := queue.NewProbe()
			q := queue.New[work.Item](queue.WithProbe(p))
			r := &recorder{}

			if s.ConsumeOne(q, r) {
				t.Error("expected ConsumeOne() = false on empty queue")
			}
			if len(r.items) != 0 {
				t.Errorf("expected no processing, got %d items", len(r.items))
			}
			if p.Inside() != 0 {
				t.Errorf("expected lock released on empty path, inside=%d", p.Inside())
			}
			if p.Entries() != 1 {
				t.Errorf("expected exactly one acquisition, got %d", p.Entries())
			}
		})
	}
}

func TestNew_Kinds(t *testing.T) {
	testCases := []struct {
		kind consume.Kind
		name string
	}{
		{consume.KindEarlyRelease, "early-release"},
		{consume.KindScopedRelease, "scoped-release"},
		{consume.KindScopedCallback, "scoped-callback"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := consume.New(tc.kind)
			if err != nil {
				t.Fatal(err)
			}
			if s.Name() != tc.name {
				t.Errorf("expected Name() = %q, got %q", tc.name, s.Name())
			}
			byName, err := consume.ByName(tc.name)
			if err != nil {
				t.Fatal(err)
			}
			if byName != s {
				t.Errorf("expected ByName(%q) = %T, got %T", tc.name, s, byName)
			}
		})
	}

	if _, err := consume.New(consume.Kind(7)); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := consume.ByName("lock_guard"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestAll_Order(t *testing.T) {
	want := []string{"early-release", "scoped-release", "scoped-callback"}
	all := consume.All()
	if len(all) != len(want) {
		t.Fatalf("expected %d strategies, got %d", len(want), len(all))
	}
	for i, s := range all {
		if s.Name() != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], s.Name())
		}
	}
}

// counter counts processed items per worker; only the owning goroutine
// touches it.
type counter struct {
	seen []int
}

func (c *counter) Process(it work.Item) {
	c.seen = append(c.seen, it.ID)
}

func TestStrategies_ConcurrentExactlyOnce(t *testing.T) {
	const total = 5000
	for _, s := range consume.All() {
		t.Run(s.Name(), func(t *testing.T) {
			p := queue.NewProbe()
			q := queue.New[work.Item](queue.WithProbe(p))
			for _, it := range work.Messages(total) {
				q.Push(it)
			}

			counts := make([]int, total)
			var mu sync.Mutex
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					c := &counter{}
					for !q.IsEmpty() {
						s.ConsumeOne(q, c)
					}
					mu.Lock()
					for _, id := range c.seen {
						counts[id]++
					}
					mu.Unlock()
				}()
			}
			wg.Wait()

			for id, n := range counts {
				if n != 1 {
					t.Fatalf("item %d processed %d times", id, n)
				}
			}
			if p.Violations() != 0 {
				t.Errorf("expected no mutual exclusion violations, got %d", p.Violations())
			}
		})
	}
}

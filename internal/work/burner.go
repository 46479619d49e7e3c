package work

// DefaultIterations is the loop count of one synthetic work call.
const DefaultIterations = 1_000_000

// Burner runs a fixed number of loop iterations per item.
//
// The accumulated result is kept in Sum so the loop has an observable
// effect and cannot be removed by the compiler. A Burner is not safe for
// concurrent use; give each worker its own.
type Burner struct {
	iterations int
	sum        uint64
	items      int
}

// NewBurner creates a Burner that loops iterations times per item.
func NewBurner(iterations int) *Burner {
	if iterations < 0 {
		iterations = 0
	}
	return &Burner{iterations: iterations}
}

// BurnerFactory returns a Factory producing Burners with the given intensity.
func BurnerFactory(iterations int) Factory {
	return func() Processor {
		return NewBurner(iterations)
	}
}

// Process burns CPU for one item.
func (b *Burner) Process(it Item) {
	acc := b.sum
	seed := uint64(len(it.Payload))
	for i := 0; i < b.iterations; i++ {
		acc += seed ^ uint64(i)
	}
	b.sum = acc
	b.items++
}

// Sum returns the accumulated loop result.
func (b *Burner) Sum() uint64 {
	return b.sum
}

// Items returns how many items this Burner processed.
func (b *Burner) Items() int {
	return b.items
}

// Iterations returns the configured loop count.
func (b *Burner) Iterations() int {
	return b.iterations
}

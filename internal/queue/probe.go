package queue

import "code.hybscloud.com/atomix"

// Probe counts goroutines inside a queue's critical section.
//
// With a correct lock, occupancy never exceeds 1. The counters are updated
// with atomics so that a broken lock is detected rather than hidden.
type Probe struct {
	inside     atomix.Int64
	max        atomix.Uint64
	entries    atomix.Int64
	violations atomix.Int64
}

// NewProbe creates a zeroed Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Enter records a goroutine entering the critical section.
func (p *Probe) Enter() {
	n := p.inside.AddAcqRel(1)
	p.entries.Add(1)
	if n > 1 {
		p.violations.Add(1)
	}
	for {
		m := p.max.LoadAcquire()
		if uint64(n) <= m || p.max.CompareAndSwapAcqRel(m, uint64(n)) {
			return
		}
	}
}

// Exit records a goroutine leaving the critical section.
func (p *Probe) Exit() {
	p.inside.AddAcqRel(-1)
}

// Max returns the highest occupancy observed.
func (p *Probe) Max() int {
	return int(p.max.LoadAcquire())
}

// Entries returns the number of lock acquisitions observed.
func (p *Probe) Entries() int64 {
	return p.entries.Load()
}

// Violations returns the number of entries that found another goroutine
// already inside.
func (p *Probe) Violations() int64 {
	return p.violations.Load()
}

// Inside returns the current occupancy.
func (p *Probe) Inside() int64 {
	return p.inside.Load()
}

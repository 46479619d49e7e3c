package bench

import "time"

// SetClock replaces the time source used to stamp trials.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

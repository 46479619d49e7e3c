// Package report compares trial durations and renders the result.
//
// Durations are compared at microsecond resolution. Every strategy whose
// time equals the minimum is a winner, so ties produce several winners.
// The others are reported as a percentage slowdown relative to the
// minimum.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Result is one strategy's measured time.
type Result struct {
	Name    string
	Elapsed time.Duration
}

// Line is one strategy's row in a Summary.
type Line struct {
	Name        string  `json:"name"`
	Micros      int64   `json:"micros"`
	Winner      bool    `json:"winner"`
	SlowdownPct float64 `json:"slowdownPct"`
}

// Summary is the comparison of all results from one run.
type Summary struct {
	RunID       string `json:"runId"`
	Lines       []Line `json:"lines"`
	BestMicros  int64  `json:"bestMicros"`
	WorstMicros int64  `json:"worstMicros"`
	// SpreadPct is (worst - best) / best * 100.
	SpreadPct float64 `json:"spreadPct"`
}

// Winners returns the names of every strategy tied for the best time.
func (s Summary) Winners() []string {
	var names []string
	for _, l := range s.Lines {
		if l.Winner {
			names = append(names, l.Name)
		}
	}
	return names
}

// Compare builds a Summary from results, keeping their order.
// An empty input yields an empty Summary.
func Compare(results []Result) Summary {
	s := Summary{RunID: uuid.NewString()}
	if len(results) == 0 {
		return s
	}

	best := results[0].Elapsed.Microseconds()
	worst := best
	for _, r := range results[1:] {
		us := r.Elapsed.Microseconds()
		best = min(best, us)
		worst = max(worst, us)
	}

	s.BestMicros = best
	s.WorstMicros = worst
	s.SpreadPct = percentOver(worst, best)
	s.Lines = make([]Line, len(results))
	for i, r := range results {
		us := r.Elapsed.Microseconds()
		s.Lines[i] = Line{
			Name:        r.Name,
			Micros:      us,
			Winner:      us == best,
			SlowdownPct: percentOver(us, best),
		}
	}
	return s
}

// percentOver returns how much larger v is than base, in percent.
// A zero base has no meaningful ratio and yields 0.
func percentOver(v, base int64) float64 {
	if base == 0 {
		return 0
	}
	return float64(v-base) / float64(base) * 100
}

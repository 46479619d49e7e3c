package report

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

const rule = "─────────────────────────────────────────────────────"

// Header describes the run configuration printed above the results.
type Header struct {
	Workers    int
	Messages   int
	Iterations int
	Lock       string
}

// WriteHeader prints the run configuration.
func WriteHeader(w io.Writer, h Header) error {
	_, err := fmt.Fprintf(w,
		"Benchmarking lock scope around a shared queue\n"+
			"%s\n"+
			"  Workers:            %d\n"+
			"  Messages per trial: %d\n"+
			"  Work per message:   %d loop iterations\n"+
			"  Lock:               %s\n"+
			"%s\n",
		rule, h.Workers, h.Messages, h.Iterations, h.Lock, rule)
	return err
}

// WriteTrial prints one strategy's elapsed time as it completes.
func WriteTrial(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "  %-16s %d µs\n", r.Name+":", r.Elapsed.Microseconds())
	return err
}

// WriteText prints the comparison block.
func WriteText(w io.Writer, s Summary) error {
	p := &printer{w: w}
	p.printf("%s\n", rule)
	p.printf("Comparison:\n")
	p.printf("%s\n", rule)
	for _, l := range s.Lines {
		if l.Winner {
			p.printf("  %-16s %d µs  WINNER\n", l.Name+":", l.Micros)
			continue
		}
		p.printf("  %-16s %d µs  (+%.2f%% slower)\n", l.Name+":", l.Micros, l.SlowdownPct)
	}
	p.printf("%s\n", rule)
	p.printf("  Range:  %.2f%%\n", s.SpreadPct)
	p.printf("  Best:   %d µs\n", s.BestMicros)
	p.printf("  Worst:  %d µs\n", s.WorstMicros)
	p.printf("%s\n", rule)
	return p.err
}

// WriteJSON encodes s as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, s Summary) error {
	b, err := sonic.Marshal(s)
	if err != nil {
		return fmt.Errorf("report: encode summary: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// printer keeps the first write error so callers check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Command lockscope measures how the timing of the lock release around a
// shared work queue affects multi-worker throughput.
//
// It runs one trial per consume strategy, in a fixed order, and prints
// each strategy's time and its slowdown relative to the fastest.
//
// Usage:
//
//	go run ./cmd/lockscope
//	go run ./cmd/lockscope -f etc/lockscope.yaml -json
package main

import (
	"flag"
	"os"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/bench"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/config"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/consume"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/report"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/work"
)

func main() {
	configFile := flag.String("f", "", "config file (yaml, json or toml); built-in defaults when empty")
	asJSON := flag.Bool("json", false, "print the summary as JSON")
	diag := flag.Bool("gops", false, "start the gops diagnostics agent")
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)
	logx.MustSetup(c.Log)
	// stdout carries the report only
	logx.SetWriter(logx.NewWriter(os.Stderr))
	defer logx.Close()

	if *diag {
		if err := agent.Listen(agent.Options{}); err != nil {
			logx.Errorw("gops agent", logx.Field("error", err.Error()))
		} else {
			defer agent.Close()
		}
	}

	locker, err := queue.NewLocker(c.Lock)
	logx.Must(err)
	q := queue.New[work.Item](queue.WithLocker(locker), queue.WithCapacity(c.Messages))
	runner := bench.NewRunner(q, c.Params())

	out := os.Stdout
	if !*asJSON {
		logx.Must(report.WriteHeader(out, report.Header{
			Workers:    c.Workers,
			Messages:   c.Messages,
			Iterations: c.Iterations,
			Lock:       c.Lock,
		}))
	}

	strategies := consume.All()
	results := make([]report.Result, 0, len(strategies))
	for _, s := range strategies {
		t := runner.RunTrial(s)
		r := report.Result{Name: t.Strategy, Elapsed: t.Elapsed}
		results = append(results, r)
		if !*asJSON {
			logx.Must(report.WriteTrial(out, r))
		}
	}

	summary := report.Compare(results)
	if *asJSON {
		logx.Must(report.WriteJSON(out, summary))
		return
	}
	logx.Must(report.WriteText(out, summary))
}

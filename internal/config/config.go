// Package config holds the benchmark parameters.
//
// Defaults reproduce the reference run: 8 workers, 100000 messages per
// trial and 1000000 loop iterations of synthetic work per message, all
// guarded by a sync.Mutex. A YAML, JSON or TOML file may override them.
package config

import (
	"fmt"
	"slices"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/bench"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/queue"
)

// Config is the complete benchmark configuration.
type Config struct {
	Workers    int    `json:",default=8"`
	Messages   int    `json:",default=100000"`
	Iterations int    `json:",default=1000000"`
	Lock       string `json:",default=mutex,options=mutex|spin|adaptive"`
	Log        logx.LogConf
}

// Load reads path, or applies defaults when path is empty.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return c, fmt.Errorf("config: defaults: %w", err)
		}
	} else if err := conf.Load(path, &c); err != nil {
		return c, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects values no trial can run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.Messages < 0 {
		return fmt.Errorf("config: messages must not be negative, got %d", c.Messages)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations must not be negative, got %d", c.Iterations)
	}
	if !slices.Contains(queue.LockKinds(), c.Lock) {
		return fmt.Errorf("config: unknown lock kind %q", c.Lock)
	}
	return nil
}

// Params returns the trial parameters.
func (c Config) Params() bench.Params {
	return bench.Params{
		Workers:    c.Workers,
		Messages:   c.Messages,
		Iterations: c.Iterations,
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/lock-scope-benchmarks/internal/bench"
	"github.com/randomizedcoder/lock-scope-benchmarks/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, 100000, c.Messages)
	assert.Equal(t, 1000000, c.Iterations)
	assert.Equal(t, "mutex", c.Lock)
	assert.Equal(t, bench.Params{Workers: 8, Messages: 100000, Iterations: 1000000}, c.Params())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "lockscope.yaml", "Workers: 2\nMessages: 50\nLock: adaptive\n")

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, 50, c.Messages)
	assert.Equal(t, 1000000, c.Iterations)
	assert.Equal(t, "adaptive", c.Lock)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := config.Load("")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero workers", func(c *config.Config) { c.Workers = 0 }},
		{"negative messages", func(c *config.Config) { c.Messages = -1 }},
		{"negative iterations", func(c *config.Config) { c.Iterations = -1 }},
		{"unknown lock", func(c *config.Config) { c.Lock = "rwmutex" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	assert.NoError(t, base.Validate())
}

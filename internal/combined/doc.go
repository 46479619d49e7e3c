// Package combined provides interaction benchmarks that run the queue,
// the consume strategies and the worker pool together.
//
// These benchmarks are more representative than the isolated
// micro-benchmarks in each package: they include goroutine start-up,
// lock contention between workers and the synthetic work itself.
package combined

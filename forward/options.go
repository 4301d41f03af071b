// SPDX-License-Identifier: MIT
// Package: forward
//
// options.go: functional options for Field.
//
// Contract:
//   - Option constructors panic on meaningless inputs (nil logger, workers < 1).
//   - Field itself never panics; argument errors are returned.
//
// Defaults:
//   - area    = nil                  (point sampling)
//   - grains  = nil                  (no grain field)
//   - workers = runtime.GOMAXPROCS(0)
//   - logger  = zap.NewNop()

package forward

import (
	"runtime"

	"github.com/katalvlaran/magprism/mesher"
	"github.com/katalvlaran/magprism/supersample"
	"go.uber.org/zap"
)

// Option customizes a Field call.
type Option func(*config)

type config struct {
	area    *supersample.EffectiveArea // nil means point sampling
	grains  []mesher.Sphere
	workers int
	logger  *zap.Logger
}

// newConfig resolves defaults and applies opts in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEffectiveArea enables footprint averaging over a sensor of the given
// active area. The area is validated by Field, not here.
func WithEffectiveArea(area supersample.EffectiveArea) Option {
	return func(c *config) {
		a := area
		c.area = &a
	}
}

// WithGrains adds the field of magnetized spheres to the prism field.
// The slice is not copied; callers must not mutate it during the call.
func WithGrains(grains []mesher.Sphere) Option {
	return func(c *config) {
		c.grains = grains
	}
}

// WithWorkers bounds the number of concurrently evaluated sensor chunks.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("forward: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger used for per-call debug output. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("forward: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

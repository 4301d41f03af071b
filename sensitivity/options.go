// SPDX-License-Identifier: MIT

package sensitivity

import (
	"runtime"

	"github.com/katalvlaran/magprism/supersample"
	"go.uber.org/zap"
)

// Option customizes a Jacobian call.
// Defaults: point sampling, GOMAXPROCS workers, no-op logger.
type Option func(*config)

type config struct {
	area    *supersample.EffectiveArea
	workers int
	logger  *zap.Logger
}

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

// WithEffectiveArea averages every kernel column over the sensor footprint.
func WithEffectiveArea(area supersample.EffectiveArea) Option {
	return func(c *config) {
		a := area
		c.area = &a
	}
}

// WithWorkers bounds the number of prism blocks assembled concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sensitivity: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the debug logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sensitivity: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

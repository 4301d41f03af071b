// SPDX-License-Identifier: MIT

package forward

import (
	"github.com/katalvlaran/magprism/kernel"
	"github.com/katalvlaran/magprism/mesher"
	"github.com/katalvlaran/magprism/plane"
	"github.com/katalvlaran/magprism/supersample"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Field returns the induction (nT) of model at the sensors (x[i], y[i], z[i]).
// The component is chosen by alpha: Bz for planes z-/z+, By for y+/y-.
//
// Stage 1: validate alpha, coordinate lengths and the effective area.
// Stage 2: split sensors into chunks; each chunk samples the prism field (and
// the grain field, if any) through supersample.Evaluate.
// Stage 3: grain contributions are added to the prism field chunk by chunk.
//
// Errors:
//   - plane.ErrInvalidPlane for an unknown alpha.
//   - ErrLengthMismatch for unequal coordinate slices.
//   - supersample.ErrNonPositiveArea for a degenerate sensor area.
//
// Complexity: O(N·(P+G)·Q) with Q = 1 (point) or 49 (averaged).
func Field(x, y, z []float64, model []mesher.Prism, alpha plane.Alpha, opts ...Option) ([]float64, error) {
	if err := alpha.Validate(); err != nil {
		return nil, forwardErrorf(opField, err)
	}
	if len(x) != len(y) || len(x) != len(z) {
		return nil, forwardErrorf(opField, ErrLengthMismatch)
	}
	cfg := newConfig(opts...)
	if cfg.area != nil {
		if err := cfg.area.Validate(); err != nil {
			return nil, forwardErrorf(opField, err)
		}
	}

	f := alpha.Field()
	n := len(x)
	cfg.logger.Debug("forward field",
		zap.Int("sensors", n),
		zap.Int("prisms", len(model)),
		zap.Int("grains", len(cfg.grains)),
		zap.Stringer("plane", alpha),
		zap.Stringer("component", f),
		zap.Bool("averaged", cfg.area != nil),
		zap.Int("workers", cfg.workers),
	)

	prismFn := func(x, y, z []float64) ([]float64, error) {
		return kernel.PrismField(f, x, y, z, model)
	}
	grainFn := func(x, y, z []float64) ([]float64, error) {
		return kernel.SphereField(f, x, y, z, cfg.grains)
	}

	out := make([]float64, n)
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for _, c := range chunks(n, cfg.workers) {
		lo, hi := c[0], c[1]
		g.Go(func() error {
			vals, err := supersample.Evaluate(x[lo:hi], y[lo:hi], z[lo:hi], cfg.area, prismFn)
			if err != nil {
				return err
			}
			if len(cfg.grains) > 0 {
				noise, err := supersample.Evaluate(x[lo:hi], y[lo:hi], z[lo:hi], cfg.area, grainFn)
				if err != nil {
					return err
				}
				floats.Add(vals, noise)
			}
			copy(out[lo:hi], vals)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, forwardErrorf(opField, err)
	}

	return out, nil
}

// chunks splits [0, n) into at most k contiguous half-open ranges of nearly
// equal size. n == 0 yields no ranges.
func chunks(n, k int) [][2]int {
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	size, rem := n/k, n%k
	out := make([][2]int, 0, k)
	lo := 0
	for i := 0; i < k; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}

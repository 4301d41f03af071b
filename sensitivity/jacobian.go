// SPDX-License-Identifier: MIT

package sensitivity

import (
	"github.com/katalvlaran/magprism/kernel"
	"github.com/katalvlaran/magprism/matrix"
	"github.com/katalvlaran/magprism/mesher"
	"github.com/katalvlaran/magprism/plane"
	"github.com/katalvlaran/magprism/supersample"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Jacobian builds the N×3P sensitivity matrix of model (P = p prisms) at the
// sensors (x, y, z) for plane alpha.
//
// Implementation:
//   - Stage 1: validate p, len(model), alpha, coordinates and effective area.
//   - Stage 2: for each prism (concurrently), sample the three kernel
//     components of alpha.Columns() through supersample.Evaluate and write
//     them into columns 3i..3i+2.
//   - Stage 3: scale the whole matrix in place by CM·T2NT.
//
// Prism magnetizations are ignored; only geometry matters.
//
// Errors:
//   - ErrNoPrisms (p <= 0), ErrDimensionMismatch (len(model) != p).
//   - plane.ErrInvalidPlane, ErrLengthMismatch, ErrNoSensors.
//   - supersample.ErrNonPositiveArea.
//
// Complexity: O(N·P·Q) kernel evaluations, Q = 1 or 49; O(N·P) memory.
func Jacobian(p int, x, y, z []float64, model []mesher.Prism, alpha plane.Alpha, opts ...Option) (*matrix.Dense, error) {
	if p <= 0 {
		return nil, sensitivityErrorf(opJacobian, ErrNoPrisms)
	}
	if len(model) != p {
		return nil, sensitivityErrorf(opJacobian, ErrDimensionMismatch)
	}
	if err := alpha.Validate(); err != nil {
		return nil, sensitivityErrorf(opJacobian, err)
	}
	if len(x) != len(y) || len(x) != len(z) {
		return nil, sensitivityErrorf(opJacobian, ErrLengthMismatch)
	}
	if len(x) == 0 {
		return nil, sensitivityErrorf(opJacobian, ErrNoSensors)
	}
	cfg := newConfig(opts...)
	if cfg.area != nil {
		if err := cfg.area.Validate(); err != nil {
			return nil, sensitivityErrorf(opJacobian, err)
		}
	}

	cols := alpha.Columns()
	cfg.logger.Debug("sensitivity jacobian",
		zap.Int("sensors", len(x)),
		zap.Int("prisms", p),
		zap.Stringer("plane", alpha),
		zap.Stringers("columns", []kernel.Component{cols[0], cols[1], cols[2]}),
		zap.Bool("averaged", cfg.area != nil),
	)

	g, err := matrix.NewDense(len(x), 3*p)
	if err != nil {
		return nil, sensitivityErrorf(opJacobian, err)
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.workers)
	for i := range model {
		prism := model[i]
		eg.Go(func() error {
			for k, c := range cols {
				col, err := supersample.Evaluate(x, y, z, cfg.area, func(x, y, z []float64) ([]float64, error) {
					return kernel.PrismKernel(c, x, y, z, prism)
				})
				if err != nil {
					return err
				}
				if err = g.SetCol(3*i+k, col); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, sensitivityErrorf(opJacobian, err)
	}
	g.Scale(kernel.CM * kernel.T2NT)

	return g, nil
}

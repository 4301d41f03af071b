// SPDX-License-Identifier: MIT

package forward_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/magprism/forward"
	"github.com/katalvlaran/magprism/kernel"
	"github.com/katalvlaran/magprism/mesher"
	"github.com/katalvlaran/magprism/plane"
	"github.com/katalvlaran/magprism/supersample"
)

const (
	side = 1e-3  // prism side (m)
	h    = 300.0 // sensor-to-sample distance (µm)
)

var (
	scan   = plane.Area{X1: -2e-3, X2: 2e-3, Y1: -2e-3, Y2: 2e-3}
	sensor = supersample.EffectiveArea{Lx: 10, Ly: 10}
)

// sample builds a magnetized array of p prisms with varied directions.
func sample(t testing.TB, p int) []mesher.Prism {
	t.Helper()
	mags := make([]mesher.Magnetization, p)
	for i := range mags {
		mags[i] = mesher.Magnetization{
			Intensity:   1 + float64(i),
			Inclination: -30 + 20*float64(i),
			Declination: 15 * float64(i),
		}
	}
	model, err := mesher.Sample(side, side, side, p, mags)
	require.NoError(t, err)

	return model
}

func sensors(t testing.TB, alpha plane.Alpha, n int) (x, y, z []float64) {
	t.Helper()
	x, y, z, err := plane.CoordPlane(h, side, n, n, scan, alpha, 0)
	require.NoError(t, err)

	return x, y, z
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}

func TestField_PointSamplingMatchesKernel(t *testing.T) {
	model := sample(t, 1)
	for _, alpha := range []plane.Alpha{plane.PlaneZNeg, plane.PlaneYPos, plane.PlaneZPos, plane.PlaneYNeg} {
		x, y, z := sensors(t, alpha, 5)

		got, err := forward.Field(x, y, z, model, alpha)
		require.NoError(t, err)
		want, err := kernel.PrismField(alpha.Field(), x, y, z, model)
		require.NoError(t, err)

		assert.Equal(t, want, got, "plane %s", alpha)
	}
}

func TestField_Superposition(t *testing.T) {
	model := sample(t, 3)
	x, y, z := sensors(t, plane.PlaneZNeg, 6)

	for name, opts := range map[string][]forward.Option{
		"point":    nil,
		"averaged": {forward.WithEffectiveArea(sensor)},
	} {
		t.Run(name, func(t *testing.T) {
			total, err := forward.Field(x, y, z, model, plane.PlaneZNeg, opts...)
			require.NoError(t, err)

			sum := make([]float64, len(x))
			for i := range model {
				part, err := forward.Field(x, y, z, model[i:i+1], plane.PlaneZNeg, opts...)
				require.NoError(t, err)
				for k := range sum {
					sum[k] += part[k]
				}
			}
			tol := 1e-9 * maxAbs(total)
			for k := range sum {
				assert.InDelta(t, total[k], sum[k], tol, "sensor %d", k)
			}
		})
	}
}

func TestField_AveragedCloseToPointForSmallSensor(t *testing.T) {
	model := sample(t, 2)
	x, y, z := sensors(t, plane.PlaneYPos, 5)

	point, err := forward.Field(x, y, z, model, plane.PlaneYPos)
	require.NoError(t, err)
	avg, err := forward.Field(x, y, z, model, plane.PlaneYPos, forward.WithEffectiveArea(sensor))
	require.NoError(t, err)

	require.Len(t, avg, len(point))
	tol := 5e-3 * maxAbs(point)
	for k := range point {
		assert.InDelta(t, point[k], avg[k], tol, "sensor %d", k)
	}
}

func TestField_WorkerCountDoesNotChangeResult(t *testing.T) {
	model := sample(t, 4)
	x, y, z := sensors(t, plane.PlaneZPos, 7)

	seq, err := forward.Field(x, y, z, model, plane.PlaneZPos,
		forward.WithWorkers(1), forward.WithEffectiveArea(sensor))
	require.NoError(t, err)
	for _, w := range []int{2, 5, 64} {
		par, err := forward.Field(x, y, z, model, plane.PlaneZPos,
			forward.WithWorkers(w), forward.WithEffectiveArea(sensor))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", w)
	}
}

func TestField_GrainsAddDipoleField(t *testing.T) {
	model := sample(t, 2)
	grains, err := mesher.RandomGrains(rand.New(rand.NewSource(7)), mesher.GrainSpec{
		Prisms: 2, Lx: side, Ly: side, Lz: side,
		Count: 20, Declination: 10, Inclination: 40, Std: 5,
		Intensity: 1e3, Radius: 1e-5,
	})
	require.NoError(t, err)
	x, y, z := sensors(t, plane.PlaneYNeg, 4)

	clean, err := forward.Field(x, y, z, model, plane.PlaneYNeg)
	require.NoError(t, err)
	noisy, err := forward.Field(x, y, z, model, plane.PlaneYNeg, forward.WithGrains(grains))
	require.NoError(t, err)
	dip, err := kernel.SphereField(kernel.By, x, y, z, grains)
	require.NoError(t, err)

	for k := range clean {
		assert.InDelta(t, clean[k]+dip[k], noisy[k], 1e-9*maxAbs(noisy))
	}
	assert.NotEqual(t, clean, noisy)
}

func TestField_EmptySensors(t *testing.T) {
	out, err := forward.Field(nil, nil, nil, sample(t, 1), plane.PlaneZNeg)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestField_Errors(t *testing.T) {
	model := sample(t, 1)
	x, y, z := sensors(t, plane.PlaneZNeg, 2)

	_, err := forward.Field(x, y, z, model, plane.Alpha(4))
	require.ErrorIs(t, err, plane.ErrInvalidPlane)

	_, err = forward.Field(x, y[:1], z, model, plane.PlaneZNeg)
	require.ErrorIs(t, err, forward.ErrLengthMismatch)

	_, err = forward.Field(x, y, z, model, plane.PlaneZNeg,
		forward.WithEffectiveArea(supersample.EffectiveArea{Lx: 0, Ly: 5}))
	require.ErrorIs(t, err, supersample.ErrNonPositiveArea)
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { forward.WithWorkers(0) })
	assert.Panics(t, func() { forward.WithLogger(nil) })
	assert.NotPanics(t, func() { forward.WithGrains(nil) })
}

func TestField_LogsOneDebugEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	x, y, z := sensors(t, plane.PlaneZNeg, 3)

	_, err := forward.Field(x, y, z, sample(t, 2), plane.PlaneZNeg, forward.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 9, ctx["sensors"])
	assert.EqualValues(t, 2, ctx["prisms"])
	assert.Equal(t, "z-", ctx["plane"])
	assert.Equal(t, false, ctx["averaged"])
}

// SPDX-License-Identifier: MIT

package plane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magprism/kernel"
	"github.com/katalvlaran/magprism/plane"
)

var area = plane.Area{X1: -2e-3, X2: 2e-3, Y1: -1e-3, Y2: 1e-3}

func TestAlpha_PolicyTable(t *testing.T) {
	cases := []struct {
		alpha  plane.Alpha
		field  kernel.Field
		cols   [3]kernel.Component
		normal plane.Axis
		sign   float64
		label  string
	}{
		{plane.PlaneZNeg, kernel.Bz, [3]kernel.Component{kernel.XZ, kernel.YZ, kernel.ZZ}, plane.AxisZ, -1, "z-"},
		{plane.PlaneYPos, kernel.By, [3]kernel.Component{kernel.XY, kernel.YY, kernel.YZ}, plane.AxisY, +1, "y+"},
		{plane.PlaneZPos, kernel.Bz, [3]kernel.Component{kernel.XZ, kernel.YZ, kernel.ZZ}, plane.AxisZ, +1, "z+"},
		{plane.PlaneYNeg, kernel.By, [3]kernel.Component{kernel.XY, kernel.YY, kernel.YZ}, plane.AxisY, -1, "y-"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			require.NoError(t, tc.alpha.Validate())
			assert.Equal(t, tc.field, tc.alpha.Field())
			assert.Equal(t, tc.cols, tc.alpha.Columns())
			assert.Equal(t, tc.normal, tc.alpha.Normal())
			assert.Equal(t, tc.sign, tc.alpha.Sign())
			assert.Equal(t, tc.label, tc.alpha.String())
		})
	}

	for _, bad := range []plane.Alpha{-1, 4, 17} {
		require.ErrorIs(t, bad.Validate(), plane.ErrInvalidPlane)
	}
}

func TestRegular_OrderingAndEndpoints(t *testing.T) {
	u, v, err := plane.Regular(plane.Area{X1: 0, X2: 2, Y1: 10, Y2: 13}, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, u)
	assert.Equal(t, []float64{10, 11, 12, 13, 10, 11, 12, 13, 10, 11, 12, 13}, v)

	u, v, err = plane.Regular(plane.Area{X1: 5, X2: 6, Y1: 1, Y2: 1}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, u)
	assert.Equal(t, []float64{1}, v)

	_, _, err = plane.Regular(area, 0, 3)
	require.ErrorIs(t, err, plane.ErrBadShape)
	_, _, err = plane.Regular(plane.Area{X1: 1, X2: 0}, 2, 2)
	require.ErrorIs(t, err, plane.ErrBadShape)
}

func TestCoordPlane_StandOffAndAxes(t *testing.T) {
	h, l := 200.0, 3e-3
	voo := 200e-6 + 1.5e-3
	assert.InDelta(t, voo, plane.StandOff(h, l), 1e-18)

	u, v, err := plane.Regular(area, 5, 4)
	require.NoError(t, err)

	for _, alpha := range []plane.Alpha{plane.PlaneZNeg, plane.PlaneYPos, plane.PlaneZPos, plane.PlaneYNeg} {
		x, y, z, err := plane.CoordPlane(h, l, 5, 4, area, alpha, 0)
		require.NoError(t, err)
		require.Len(t, x, 20)

		held, second := z, y
		if alpha.Normal() == plane.AxisY {
			held, second = y, z
		}
		for i := range held {
			assert.InDelta(t, alpha.Sign()*voo, held[i], 1e-18, "%s point %d", alpha, i)
		}
		assert.Equal(t, u, x, "%s: rotation by 0 is the identity", alpha)
		assert.Equal(t, v, second, "%s: rotation by 0 is the identity", alpha)
	}
}

func TestCoordPlane_RotatesInPlaneAxesOnly(t *testing.T) {
	x, y, z, err := plane.CoordPlane(50, 1e-3, 3, 3, area, plane.PlaneYNeg, 90)
	require.NoError(t, err)
	u, v, err := plane.Regular(area, 3, 3)
	require.NoError(t, err)

	for i := range u {
		// (u, v) rotated by 90° is (-v, u); on planes 1/3 v maps to z.
		assert.InDelta(t, -v[i], x[i], 1e-15)
		assert.InDelta(t, u[i], z[i], 1e-15)
		assert.InDelta(t, -plane.StandOff(50, 1e-3), y[i], 1e-18)
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	u, v, err := plane.Regular(area, 6, 7)
	require.NoError(t, err)

	for _, theta := range []float64{0, 17.5, 90, -135, 360} {
		ru, rv := plane.Rotate(u, v, theta)
		bu, bv := plane.Rotate(ru, rv, -theta)
		assert.InDeltaSlice(t, u, bu, 1e-15, "theta=%g", theta)
		assert.InDeltaSlice(t, v, bv, 1e-15, "theta=%g", theta)
	}

	ru, rv := plane.Rotate(u, v, 0)
	assert.Equal(t, u, ru)
	assert.Equal(t, v, rv)
}

func TestCoordPlane_Errors(t *testing.T) {
	_, _, _, err := plane.CoordPlane(10, 1e-3, 3, 3, area, plane.Alpha(5), 0)
	require.ErrorIs(t, err, plane.ErrInvalidPlane)

	_, _, _, err = plane.CoordPlane(-10, 1e-3, 3, 3, area, plane.PlaneZNeg, 0)
	require.ErrorIs(t, err, plane.ErrBadGeometry)

	_, _, _, err = plane.CoordPlane(10, 1e-3, 3, 0, area, plane.PlaneZNeg, 0)
	require.ErrorIs(t, err, plane.ErrBadShape)
}

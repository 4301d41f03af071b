// SPDX-License-Identifier: MIT

package plane

// StandOff returns voo = h·1e-6 + L/2, the distance from the sample centre to
// the sensor plane for a sensor-to-sample distance h (micrometres) and sample
// side length L (metres).
func StandOff(h, l float64) float64 {
	return h*1e-6 + 0.5*l
}

// CoordPlane generates rotated observation coordinates on plane alpha.
//
// Implementation:
//   - Stage 1: validate alpha, h, L and the grid shape.
//   - Stage 2: lay Regular(area, nx, ny) on the plane's two in-plane axes
//     ((x, y) for planes 0/2, (x, z) for planes 1/3) and hold the normal axis
//     at Sign()·StandOff(h, L).
//   - Stage 3: rotate the in-plane axes by theta degrees; the normal axis is
//     passed through.
//
// Returns three slices of length nx·ny.
//
// Errors: ErrInvalidPlane, ErrBadGeometry, ErrBadShape.
func CoordPlane(h, l float64, nx, ny int, area Area, alpha Alpha, theta float64) (x, y, z []float64, err error) {
	if err = alpha.Validate(); err != nil {
		return nil, nil, nil, planeErrorf(opCoordPlane, err)
	}
	if h < 0 || l < 0 {
		return nil, nil, nil, planeErrorf(opCoordPlane, ErrBadGeometry)
	}
	u, v, err := Regular(area, nx, ny)
	if err != nil {
		return nil, nil, nil, planeErrorf(opCoordPlane, err)
	}

	offset := alpha.Sign() * StandOff(h, l)
	normal := make([]float64, len(u))
	for i := range normal {
		normal[i] = offset
	}

	ru, rv := Rotate(u, v, theta)
	if alpha.Normal() == AxisZ {
		return ru, rv, normal, nil
	}

	return ru, normal, rv, nil
}

// SPDX-License-Identifier: MIT

package mesher

import "math"

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// Dircos returns the unit direction cosines for an inclination and declination
// given in degrees. Inclination is measured from the horizontal towards +z,
// declination from +x towards +y.
func Dircos(inc, dec float64) Vector {
	ci, si := math.Cos(deg2rad*inc), math.Sin(deg2rad*inc)
	cd, sd := math.Cos(deg2rad*dec), math.Sin(deg2rad*dec)

	return Vector{X: ci * cd, Y: ci * sd, Z: si}
}

// Ang2Vec converts (intensity, inclination, declination) into a Cartesian vector.
func Ang2Vec(intensity, inc, dec float64) Vector {
	d := Dircos(inc, dec)

	return Vector{X: intensity * d.X, Y: intensity * d.Y, Z: intensity * d.Z}
}

// Vec returns the Cartesian vector of m.
func (m Magnetization) Vec() Vector {
	return Ang2Vec(m.Intensity, m.Inclination, m.Declination)
}

// Vec2Ang converts a Cartesian vector into (intensity, inclination, declination).
// A zero vector yields all zeros.
func Vec2Ang(v Vector) Magnetization {
	intensity := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if intensity == 0 {
		return Magnetization{}
	}

	return Magnetization{
		Intensity:   intensity,
		Inclination: rad2deg * math.Asin(v.Z/intensity),
		Declination: rad2deg * math.Atan2(v.Y, v.X),
	}
}

// ParametersSph splits a flat parameter vector of length 3p, laid out as
// (mx0, my0, mz0, mx1, ...), into p spherical magnetizations. Declinations are
// wrapped into (-180, 180].
func ParametersSph(p int, params []float64) ([]Magnetization, error) {
	if p <= 0 {
		return nil, mesherErrorf(methodParametersSph, ErrBadSize, "p=%d", p)
	}
	if len(params) != 3*p {
		return nil, mesherErrorf(methodParametersSph, ErrBadSize, "len(params)=%d, want %d", len(params), 3*p)
	}

	out := make([]Magnetization, p)
	for i := 0; i < p; i++ {
		m := Vec2Ang(Vector{X: params[3*i], Y: params[3*i+1], Z: params[3*i+2]})
		if m.Declination > 180 {
			m.Declination -= 360
		}
		if m.Declination <= -180 {
			m.Declination += 360
		}
		out[i] = m
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package plane

import (
	"fmt"

	"github.com/katalvlaran/magprism/kernel"
)

// Alpha indexes one of the four observation planes.
type Alpha int

const (
	PlaneZNeg Alpha = iota
	PlaneYPos
	PlaneZPos
	PlaneYNeg
)

// Axis names a Cartesian axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// policy is everything that depends on the plane index.
type policy struct {
	field  kernel.Field // measured component
	normal Axis         // axis held at ±voo
	sign   float64      // side of the sample
}

var policies = [...]policy{
	PlaneZNeg: {field: kernel.Bz, normal: AxisZ, sign: -1},
	PlaneYPos: {field: kernel.By, normal: AxisY, sign: +1},
	PlaneZPos: {field: kernel.Bz, normal: AxisZ, sign: +1},
	PlaneYNeg: {field: kernel.By, normal: AxisY, sign: -1},
}

// Validate returns ErrInvalidPlane unless a is one of the four planes.
func (a Alpha) Validate() error {
	if a < PlaneZNeg || a > PlaneYNeg {
		return fmt.Errorf("alpha=%d: %w", int(a), ErrInvalidPlane)
	}
	return nil
}

// Field returns the induction component sensed on the plane: Bz on planes
// 0 and 2, By on planes 1 and 3. a must be valid.
func (a Alpha) Field() kernel.Field { return policies[a].field }

// Columns returns the kernels forming a prism's Jacobian column block:
// (xz, yz, zz) on planes 0 and 2, (xy, yy, yz) on planes 1 and 3.
// a must be valid.
func (a Alpha) Columns() [3]kernel.Component { return policies[a].field.Components() }

// Normal returns the axis held constant on the plane.
func (a Alpha) Normal() Axis { return policies[a].normal }

// Sign returns +1 or -1, the side of the sample the plane lies on.
func (a Alpha) Sign() float64 { return policies[a].sign }

// String returns a label such as "z-" or "y+".
func (a Alpha) String() string {
	if a.Validate() != nil {
		return fmt.Sprintf("Alpha(%d)", int(a))
	}
	axis := "z"
	if a.Normal() == AxisY {
		axis = "y"
	}
	if a.Sign() > 0 {
		return axis + "+"
	}
	return axis + "-"
}

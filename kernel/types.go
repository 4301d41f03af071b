// SPDX-License-Identifier: MIT

package kernel

// Physical constants applied when turning kernels into fields.
const (
	// CM is the magnetic constant divided by 4π, in henry per metre.
	CM = 1e-7

	// T2NT converts tesla to nanotesla.
	T2NT = 1e9
)

// Component selects one second-derivative kernel.
type Component int

const (
	XX Component = iota
	XY
	XZ
	YY
	YZ
	ZZ
)

var componentNames = [...]string{"xx", "xy", "xz", "yy", "yz", "zz"}

// String returns the lower-case component label ("xz", "zz", ...).
func (c Component) String() string {
	if !c.valid() {
		return "unknown"
	}
	return componentNames[c]
}

func (c Component) valid() bool { return c >= XX && c <= ZZ }

// Field selects a measured induction component.
type Field int

const (
	// Bz is the vertical-like component, sensed on planes normal to z.
	Bz Field = iota
	// By is the in-plane-like component, sensed on planes normal to y.
	By
)

// fieldComponents maps each field to the kernels multiplying (Mx, My, Mz).
var fieldComponents = [...][3]Component{
	Bz: {XZ, YZ, ZZ},
	By: {XY, YY, YZ},
}

// Components returns the kernels whose dot product with (Mx, My, Mz) yields f.
// The result is also the Jacobian column triple for a prism under f.
// f must be Bz or By.
func (f Field) Components() [3]Component {
	return fieldComponents[f]
}

// String returns "bz" or "by".
func (f Field) String() string {
	switch f {
	case Bz:
		return "bz"
	case By:
		return "by"
	default:
		return "unknown"
	}
}

func (f Field) valid() bool { return f == Bz || f == By }

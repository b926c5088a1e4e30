package kernel

import (
	"errors"
	"fmt"

	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

const (
	// DimensionMinMM is the smallest valid extent along any axis, in millimeters.
	DimensionMinMM float64 = 0
	// DimensionMaxMM is the largest valid extent along any axis, in millimeters.
	// It comfortably covers large-format FDM printers.
	DimensionMaxMM float64 = 2000
)

// ErrDimensionsAreNotConstructed is returned when attempting to use an improperly
// initialized Dimensions value. Dimensions must be created via NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions represents the axis-aligned bounding box of a printable object or
// the build volume of a printer, in millimeters. It is an immutable value
// object; the zero value is invalid and will fail validation.
//
// Example:
//
//	box, err := kernel.NewDimensions(120, 80, 45.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Printf("bounding box: %s", box) // Output: Dimensions(120x80x45.5)
type Dimensions struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	z     float64
	guard guard.ConstructorGuard
}

// NewDimensions creates a Dimensions value from extents along each axis.
// Every extent must be within [DimensionMinMM, DimensionMaxMM]; a zero extent
// is allowed so that degenerate (flat) models can still carry a bounding box.
//
// Parameters:
//   - x: extent along the X axis in millimeters
//   - y: extent along the Y axis in millimeters
//   - z: extent along the Z axis in millimeters
//
// Returns:
//   - Dimensions: a valid dimensions instance
//   - error: validation error if any extent is out of bounds
func NewDimensions(x float64, y float64, z float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setX(x), d.setY(y), d.setZ(z)); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate checks that the Dimensions value was created via its constructor.
// The zero value fails this validation.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// X returns the extent along the X axis in millimeters.
func (d Dimensions) X() float64 {
	return d.x
}

// Y returns the extent along the Y axis in millimeters.
func (d Dimensions) Y() float64 {
	return d.y
}

// Z returns the extent along the Z axis in millimeters.
func (d Dimensions) Z() float64 {
	return d.z
}

// IsEqual compares two Dimensions values for exact equality on every axis.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.x == other.x && d.y == other.y && d.z == other.z
}

// FitsWithin reports whether an object with these dimensions fits inside the
// given build volume. The comparison is axis-aligned per axis; reorienting the
// model to fit diagonally is not considered.
func (d Dimensions) FitsWithin(buildVolume Dimensions) bool {
	return d.x <= buildVolume.x && d.y <= buildVolume.y && d.z <= buildVolume.z
}

// Volume returns the bounding box volume in cubic millimeters.
func (d Dimensions) Volume() float64 {
	return d.x * d.y * d.z
}

// String returns a human readable representation, e.g. "Dimensions(120x80x45.5)".
func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%gx%gx%g)", d.x, d.y, d.z)
}

func (d *Dimensions) setX(x float64) error {
	if x < DimensionMinMM || x > DimensionMaxMM {
		return errs.NewValueIsOutOfRangeError("x", x, DimensionMinMM, DimensionMaxMM)
	}
	d.x = x
	return nil
}

func (d *Dimensions) setY(y float64) error {
	if y < DimensionMinMM || y > DimensionMaxMM {
		return errs.NewValueIsOutOfRangeError("y", y, DimensionMinMM, DimensionMaxMM)
	}
	d.y = y
	return nil
}

func (d *Dimensions) setZ(z float64) error {
	if z < DimensionMinMM || z > DimensionMaxMM {
		return errs.NewValueIsOutOfRangeError("z", z, DimensionMinMM, DimensionMaxMM)
	}
	d.z = z
	return nil
}

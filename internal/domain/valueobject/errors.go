package valueobject

import (
	"errors"
	"fmt"
)

// Unit algebra errors define domain-specific error conditions.
var (
	// ErrDimensionSpaceMismatch is returned when two units drawn from different
	// dimension spaces are combined.
	ErrDimensionSpaceMismatch = errors.New("dimension space mismatch")

	// ErrDimensionalMismatch is returned when quantities of different dimension
	// are added, subtracted or compared (e.g. metre + second).
	ErrDimensionalMismatch = errors.New("dimensional mismatch")

	// ErrVectorLengthMismatch signals two exponent vectors of different length.
	// Units built through a DimensionSpace can never trigger it.
	ErrVectorLengthMismatch = errors.New("exponent vector length mismatch")

	// ErrDimensionIndexOutOfRange is returned for a base dimension index outside [0, n).
	ErrDimensionIndexOutOfRange = errors.New("dimension index out of range")

	// ErrUnknownDimension is returned when a base dimension name is not declared in a space.
	ErrUnknownDimension = errors.New("unknown base dimension")

	// ErrNoUnits is returned when a product of zero units is requested.
	ErrNoUnits = errors.New("at least one unit is required")

	// ErrInvalidSpaceName is returned when a dimension space is declared without a name.
	ErrInvalidSpaceName = errors.New("dimension space name cannot be empty")

	// ErrInvalidDimensionName is returned when a base dimension name is blank.
	ErrInvalidDimensionName = errors.New("base dimension name cannot be empty")

	// ErrDuplicateDimension is returned when a base dimension is declared twice in one space.
	ErrDuplicateDimension = errors.New("duplicate base dimension")

	// ErrInvalidUnit is returned for a unit that is not bound to a dimension space.
	ErrInvalidUnit = errors.New("unit has no dimension space")

	// ErrDivisionByZero is returned when an integral quantity is divided by zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")
)

// MismatchError describes an operation rejected because its operand units
// are incompatible. It unwraps to ErrDimensionSpaceMismatch or
// ErrDimensionalMismatch.
type MismatchError struct {
	// Op is the rejected operation (add, subtract, multiply, divide, compare).
	Op string

	// Left is the unit of the left-hand operand.
	Left Unit

	// Right is the unit of the right-hand operand.
	Right Unit

	cause error
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s %s vs %s %s",
		e.Op, e.cause,
		e.Left.describe(), e.Left.exponents,
		e.Right.describe(), e.Right.exponents,
	)
}

func (e *MismatchError) Unwrap() error { return e.cause }

// LengthMismatchError reports two exponent vectors of different length.
// It unwraps to ErrVectorLengthMismatch.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %d vs %d", ErrVectorLengthMismatch, e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrVectorLengthMismatch }

// checkCompatible gates an operation on two units. strict additionally
// requires identical exponents.
func checkCompatible(op string, left, right Unit, strict bool) error {
	if !SameDimensionSpace(left, right) {
		return &MismatchError{Op: op, Left: left, Right: right, cause: ErrDimensionSpaceMismatch}
	}
	if strict && !Equal(left.exponents, right.exponents) {
		return &MismatchError{Op: op, Left: left, Right: right, cause: ErrDimensionalMismatch}
	}
	return nil
}

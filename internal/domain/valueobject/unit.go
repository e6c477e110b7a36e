package valueobject

import (
	"fmt"
	"strings"
)

// Unit is a dimension space tag paired with an exponent vector whose length
// equals the space's cardinality. Metre is exponent 1 at the length slot,
// newton is kilogram·metre·second^-2.
//
// Units are plain values: the same unit may back any number of quantities.
// The zero Unit is invalid and is rejected by every combinator.
type Unit struct {
	space     *DimensionSpace
	exponents Exponents
}

// NewUnit creates a unit from an externally supplied exponent vector.
//
// Parameters:
//   - space: the dimension space the vector is drawn from
//   - exponents: one power per base dimension of space
//
// Returns:
//   - Unit: the created unit
//   - error: ErrInvalidUnit if space is nil, a *LengthMismatchError if the
//     vector length differs from the space cardinality
func NewUnit(space *DimensionSpace, exponents Exponents) (Unit, error) {
	if space == nil {
		return Unit{}, ErrInvalidUnit
	}
	if exponents.Len() != space.Cardinality() {
		return Unit{}, &LengthMismatchError{Left: space.Cardinality(), Right: exponents.Len()}
	}
	return Unit{space: space, exponents: exponents}, nil
}

// BasicUnit returns the unit of a single base dimension: exponent 1 at
// index i, 0 elsewhere. It panics if i is not a valid index of space.
//
// Parameters:
//   - space: the dimension space
//   - i: index of the base dimension
//
// Returns:
//   - Unit: the basic unit
func BasicUnit(space *DimensionSpace, i int) Unit {
	if space == nil {
		panic(ErrInvalidUnit)
	}
	return Unit{space: space, exponents: Basis(space.Cardinality(), i)}
}

// BasicUnitOf returns the basic unit of the named base dimension.
//
// Parameters:
//   - space: the dimension space
//   - dimension: the base dimension name (e.g. "metre")
//
// Returns:
//   - Unit: the basic unit
//   - error: ErrUnknownDimension if space does not declare dimension
func BasicUnitOf(space *DimensionSpace, dimension string) (Unit, error) {
	if space == nil {
		return Unit{}, ErrInvalidUnit
	}
	i, ok := space.IndexOf(dimension)
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q in space %q", ErrUnknownDimension, dimension, space.Name())
	}
	return BasicUnit(space, i), nil
}

// Dimensionless returns the unit with all exponents zero (e.g. metre/metre).
func Dimensionless(space *DimensionSpace) Unit {
	if space == nil {
		panic(ErrInvalidUnit)
	}
	return Unit{space: space, exponents: Zeros(space.Cardinality())}
}

// MultiplyUnits returns the unit of a product of quantities of the given
// units. The exponents of every operand are accumulated onto the first.
//
// Parameters:
//   - units: one or more units sharing a dimension space
//
// Returns:
//   - Unit: the product unit
//   - error: ErrNoUnits for an empty list, a *MismatchError wrapping
//     ErrDimensionSpaceMismatch if the spaces differ
func MultiplyUnits(units ...Unit) (Unit, error) {
	if len(units) == 0 {
		return Unit{}, ErrNoUnits
	}
	first := units[0]
	if first.space == nil {
		return Unit{}, ErrInvalidUnit
	}

	rest := make([]Exponents, 0, len(units)-1)
	for _, u := range units[1:] {
		if err := checkCompatible("multiply", first, u, false); err != nil {
			return Unit{}, err
		}
		rest = append(rest, u.exponents)
	}

	return Unit{space: first.space, exponents: Accumulate(first.exponents, rest...)}, nil
}

// DivideUnits returns the unit of dividend / divisor.
//
// Parameters:
//   - dividend: the numerator unit
//   - divisor: the denominator unit
//
// Returns:
//   - Unit: the quotient unit
//   - error: a *MismatchError wrapping ErrDimensionSpaceMismatch if the spaces differ
func DivideUnits(dividend, divisor Unit) (Unit, error) {
	if err := checkCompatible("divide", dividend, divisor, false); err != nil {
		return Unit{}, err
	}
	return Unit{space: dividend.space, exponents: Subtract(dividend.exponents, divisor.exponents)}, nil
}

// MustMultiplyUnits is like MultiplyUnits but panics on error.
// Use it for package-level unit declarations.
func MustMultiplyUnits(units ...Unit) Unit {
	u, err := MultiplyUnits(units...)
	if err != nil {
		panic(err)
	}
	return u
}

// MustDivideUnits is like DivideUnits but panics on error.
func MustDivideUnits(dividend, divisor Unit) Unit {
	u, err := DivideUnits(dividend, divisor)
	if err != nil {
		panic(err)
	}
	return u
}

// SameDimensionSpace reports whether a and b are drawn from the same
// dimension space. It gates multiplication and division.
func SameDimensionSpace(a, b Unit) bool {
	return a.space.Equals(b.space)
}

// DimensionallyEqual reports whether a and b share a dimension space and
// have identical exponents. It gates addition and subtraction.
func DimensionallyEqual(a, b Unit) bool {
	return SameDimensionSpace(a, b) && Equal(a.exponents, b.exponents)
}

// Space returns the dimension space of the unit.
func (u Unit) Space() *DimensionSpace {
	return u.space
}

// Exponents returns the exponent vector of the unit.
func (u Unit) Exponents() Exponents {
	return u.exponents
}

// Exponent returns the power of the named base dimension.
func (u Unit) Exponent(dimension string) (int, error) {
	if u.space == nil {
		return 0, ErrInvalidUnit
	}
	i, ok := u.space.IndexOf(dimension)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}
	return u.exponents.At(i), nil
}

// Pow returns the unit raised to the integer power n.
func (u Unit) Pow(n int) Unit {
	return Unit{space: u.space, exponents: u.exponents.Scale(n)}
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit {
	return Unit{space: u.space, exponents: u.exponents.Negate()}
}

// IsValid reports whether the unit is bound to a dimension space.
func (u Unit) IsValid() bool {
	return u.space != nil
}

// IsDimensionless reports whether every exponent is zero.
func (u Unit) IsDimensionless() bool {
	return u.exponents.IsZero()
}

// String renders the unit from its base dimension names,
// e.g. "second^-1·metre". A dimensionless unit renders as "1".
func (u Unit) String() string {
	if u.space == nil {
		return "<invalid unit>"
	}

	parts := make([]string, 0, u.exponents.Len())
	for i, dim := range u.space.dimensions {
		switch p := u.exponents.At(i); p {
		case 0:
		case 1:
			parts = append(parts, dim)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", dim, p))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// describe qualifies the unit with its space name for error messages.
func (u Unit) describe() string {
	if u.space == nil {
		return u.String()
	}
	return u.space.Name() + ":" + u.String()
}

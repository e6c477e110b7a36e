package valueobject

import (
	"fmt"
	"math"
)

// Number is the set of numeric types a Quantity can carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Quantity represents a numeric value tagged with a unit.
// Arithmetic never mutates the operands; it returns a new Quantity.
//
// Each operator comes in two forms: the plain form panics on an illegal
// unit combination, the Safe form returns the error instead.
//
// Example usage:
//
//	d := valueobject.NewQuantity(4.0, metre)
//	area := d.Multiply(valueobject.NewQuantity(2.0, metre)) // 8 metre^2
//	_, err := d.AddSafe(valueobject.NewQuantity(1.0, second))  // ErrDimensionalMismatch
type Quantity[T Number] struct {
	value T
	unit  Unit
}

// NewQuantity creates a new Quantity value object.
//
// Parameters:
//   - value: the numeric magnitude
//   - unit: the unit the magnitude is expressed in
//
// Returns:
//   - Quantity[T]: the created quantity
func NewQuantity[T Number](value T, unit Unit) Quantity[T] {
	return Quantity[T]{value: value, unit: unit}
}

// Value returns the numeric magnitude.
func (q Quantity[T]) Value() T {
	return q.value
}

// Unit returns the unit of the quantity.
func (q Quantity[T]) Unit() Unit {
	return q.unit
}

// Add adds two quantities of the same dimension and returns a new Quantity.
//
// Parameters:
//   - other: the quantity to add
//
// Returns:
//   - Quantity[T]: the sum, in the receiver's unit
//
// Note: Panics if the units are not dimensionally equal. Use AddSafe for error handling.
func (q Quantity[T]) Add(other Quantity[T]) Quantity[T] {
	return must(q.AddSafe(other))
}

// AddSafe adds two quantities with error handling.
//
// Parameters:
//   - other: the quantity to add
//
// Returns:
//   - Quantity[T]: the sum, in the receiver's unit
//   - error: a *MismatchError if the units are not dimensionally equal
func (q Quantity[T]) AddSafe(other Quantity[T]) (Quantity[T], error) {
	if err := checkCompatible("add", q.unit, other.unit, true); err != nil {
		return Quantity[T]{}, err
	}
	return NewQuantity(q.value+other.value, q.unit), nil
}

// Subtract subtracts another quantity of the same dimension.
//
// Note: Panics if the units are not dimensionally equal. Use SubtractSafe for error handling.
func (q Quantity[T]) Subtract(other Quantity[T]) Quantity[T] {
	return must(q.SubtractSafe(other))
}

// SubtractSafe subtracts another quantity with error handling.
//
// Parameters:
//   - other: the quantity to subtract
//
// Returns:
//   - Quantity[T]: the difference, in the receiver's unit
//   - error: a *MismatchError if the units are not dimensionally equal
func (q Quantity[T]) SubtractSafe(other Quantity[T]) (Quantity[T], error) {
	if err := checkCompatible("subtract", q.unit, other.unit, true); err != nil {
		return Quantity[T]{}, err
	}
	return NewQuantity(q.value-other.value, q.unit), nil
}

// Multiply multiplies two quantities from the same dimension space.
// The exponents need not match; the result carries the product unit.
//
// Note: Panics if the dimension spaces differ. Use MultiplySafe for error handling.
func (q Quantity[T]) Multiply(other Quantity[T]) Quantity[T] {
	return must(q.MultiplySafe(other))
}

// MultiplySafe multiplies two quantities with error handling.
//
// Parameters:
//   - other: the right-hand factor
//
// Returns:
//   - Quantity[T]: the product, in MultiplyUnits(q.Unit(), other.Unit())
//   - error: a *MismatchError if the dimension spaces differ
func (q Quantity[T]) MultiplySafe(other Quantity[T]) (Quantity[T], error) {
	unit, err := MultiplyUnits(q.unit, other.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return NewQuantity(q.value*other.value, unit), nil
}

// Divide divides by a quantity from the same dimension space.
// Floating-point division by zero follows IEEE-754 (±Inf or NaN).
//
// Note: Panics if the dimension spaces differ, or if an integral quantity is
// divided by zero. Use DivideSafe for error handling.
func (q Quantity[T]) Divide(other Quantity[T]) Quantity[T] {
	return must(q.DivideSafe(other))
}

// DivideSafe divides by a quantity with error handling.
//
// Parameters:
//   - other: the divisor
//
// Returns:
//   - Quantity[T]: the quotient, in DivideUnits(q.Unit(), other.Unit())
//   - error: a *MismatchError if the dimension spaces differ,
//     ErrDivisionByZero if T is integral and other is zero
func (q Quantity[T]) DivideSafe(other Quantity[T]) (Quantity[T], error) {
	unit, err := DivideUnits(q.unit, other.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	if other.value == 0 && isIntegral[T]() {
		return Quantity[T]{}, ErrDivisionByZero
	}
	return NewQuantity(q.value/other.value, unit), nil
}

// Scale multiplies the magnitude by a dimensionless factor.
func (q Quantity[T]) Scale(factor T) Quantity[T] {
	return NewQuantity(q.value*factor, q.unit)
}

// Negate returns a new Quantity with the negated magnitude.
func (q Quantity[T]) Negate() Quantity[T] {
	return NewQuantity(-q.value, q.unit)
}

// Abs returns a new Quantity with the absolute magnitude.
func (q Quantity[T]) Abs() Quantity[T] {
	if q.value < 0 {
		return q.Negate()
	}
	return q
}

// IsZero checks if the magnitude is zero.
func (q Quantity[T]) IsZero() bool {
	return q.value == 0
}

// IsFinite reports whether the magnitude is neither infinite nor NaN.
// Integral quantities are always finite.
func (q Quantity[T]) IsFinite() bool {
	f := float64(q.value)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Equals checks if two quantities have the same magnitude and dimensionally equal units.
func (q Quantity[T]) Equals(other Quantity[T]) bool {
	return q.value == other.value && DimensionallyEqual(q.unit, other.unit)
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to
// or greater than other.
//
// Returns:
//   - int: the ordering of the magnitudes
//   - error: a *MismatchError if the units are not dimensionally equal
func (q Quantity[T]) Compare(other Quantity[T]) (int, error) {
	if err := checkCompatible("compare", q.unit, other.unit, true); err != nil {
		return 0, err
	}
	switch {
	case q.value < other.value:
		return -1, nil
	case q.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// GreaterThan checks if this quantity is greater than another.
//
// Note: Panics if the units are not dimensionally equal.
func (q Quantity[T]) GreaterThan(other Quantity[T]) bool {
	return must(q.Compare(other)) > 0
}

// LessThan checks if this quantity is less than another.
//
// Note: Panics if the units are not dimensionally equal.
func (q Quantity[T]) LessThan(other Quantity[T]) bool {
	return must(q.Compare(other)) < 0
}

// String returns a formatted representation (e.g. "9.81 second^-2·metre").
func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

// isIntegral reports whether T truncates on division.
func isIntegral[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

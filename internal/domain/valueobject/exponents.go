// Package valueobject contains the unit algebra: exponent vectors, dimension
// spaces, units and quantities.
//
// All types are value objects:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Units compare by dimension space tag and exponents, never by derivation history.
//   - Side-effect free: every operation returns a new value.
//
// Legality is checked at operation time. Addition and subtraction require
// dimensionally equal units, multiplication and division only require a shared
// dimension space.
package valueobject

import (
	"fmt"
	"strings"
)

// Exponents is an immutable, fixed-length vector of integer powers, one per
// base dimension of a DimensionSpace.
//
// Example usage:
//
//	length := valueobject.Basis(3, 1)                 // [0 1 0]
//	time := valueobject.Basis(3, 0)                   // [1 0 0]
//	area := valueobject.Add(length, length)           // [0 2 0]
//	speed := valueobject.Subtract(length, time)       // [-1 1 0]
type Exponents struct {
	values []int
}

// NewExponents creates an exponent vector from the given values.
// The values are copied; later changes to the argument do not leak in.
//
// Parameters:
//   - values: power per base dimension, in space order
//
// Returns:
//   - Exponents: the created vector
func NewExponents(values ...int) Exponents {
	return Exponents{values: clone(values)}
}

// Basis returns a vector of length n with 1 at index i and 0 elsewhere.
// It panics if i is outside [0, n).
//
// Parameters:
//   - n: vector length (number of base dimensions)
//   - i: index of the base dimension
//
// Returns:
//   - Exponents: the basis vector
func Basis(n, i int) Exponents {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrDimensionIndexOutOfRange, i, n))
	}
	values := make([]int, n)
	values[i] = 1
	return Exponents{values: values}
}

// Zeros returns the all-zero vector of length n (a dimensionless unit).
func Zeros(n int) Exponents {
	return Exponents{values: make([]int, n)}
}

// Add returns the elementwise sum of a and b.
// It panics with a *LengthMismatchError if the lengths differ.
func Add(a, b Exponents) Exponents {
	mustSameLength(a, b)
	values := make([]int, len(a.values))
	for i := range a.values {
		values[i] = a.values[i] + b.values[i]
	}
	return Exponents{values: values}
}

// Subtract returns the elementwise difference a - b.
// It panics with a *LengthMismatchError if the lengths differ.
func Subtract(a, b Exponents) Exponents {
	mustSameLength(a, b)
	values := make([]int, len(a.values))
	for i := range a.values {
		values[i] = a.values[i] - b.values[i]
	}
	return Exponents{values: values}
}

// Accumulate folds vs into seed by repeated addition.
// An empty vs returns seed unchanged.
//
// Parameters:
//   - seed: starting vector
//   - vs: vectors to add, each of seed's length
//
// Returns:
//   - Exponents: seed + vs[0] + ... + vs[k-1]
func Accumulate(seed Exponents, vs ...Exponents) Exponents {
	acc := seed
	for _, v := range vs {
		acc = Add(acc, v)
	}
	return acc
}

// SameLength reports whether a and b have the same number of entries.
func SameLength(a, b Exponents) bool {
	return len(a.values) == len(b.values)
}

// Equal reports whether a and b have the same length and identical entries.
func Equal(a, b Exponents) bool {
	if !SameLength(a, b) {
		return false
	}
	for i := range a.values {
		if a.values[i] != b.values[i] {
			return false
		}
	}
	return true
}

// Scale multiplies every entry by k.
func (e Exponents) Scale(k int) Exponents {
	values := make([]int, len(e.values))
	for i, v := range e.values {
		values[i] = v * k
	}
	return Exponents{values: values}
}

// Negate returns the vector with every entry negated.
func (e Exponents) Negate() Exponents {
	return e.Scale(-1)
}

// Len returns the number of entries.
func (e Exponents) Len() int {
	return len(e.values)
}

// At returns the power at index i. It panics if i is out of range.
func (e Exponents) At(i int) int {
	return e.values[i]
}

// Values returns a copy of the entries.
func (e Exponents) Values() []int {
	return clone(e.values)
}

// IsZero reports whether all entries are zero.
func (e Exponents) IsZero() bool {
	for _, v := range e.values {
		if v != 0 {
			return false
		}
	}
	return true
}

// String returns the entries formatted like a slice (e.g. "[-1 1 0]").
func (e Exponents) String() string {
	parts := make([]string, len(e.values))
	for i, v := range e.values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func mustSameLength(a, b Exponents) {
	if !SameLength(a, b) {
		panic(&LengthMismatchError{Left: a.Len(), Right: b.Len()})
	}
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}

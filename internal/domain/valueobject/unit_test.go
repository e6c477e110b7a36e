package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mechanics is the three-dimension space used by the scenarios below.
func mechanics(t *testing.T) (space *DimensionSpace, second, metre, kilogram Unit) {
	t.Helper()
	space, err := NewDimensionSpace("mechanics", "time", "length", "mass")
	require.NoError(t, err)
	return space, BasicUnit(space, 0), BasicUnit(space, 1), BasicUnit(space, 2)
}

func TestNewDimensionSpace(t *testing.T) {
	space, err := NewDimensionSpace(" si ", "second", "metre")
	require.NoError(t, err)
	assert.Equal(t, "si", space.Name())
	assert.Equal(t, 2, space.Cardinality())
	assert.Equal(t, []string{"second", "metre"}, space.Dimensions())

	i, ok := space.IndexOf("metre")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = space.IndexOf("kelvin")
	assert.False(t, ok)

	name, err := space.DimensionAt(0)
	require.NoError(t, err)
	assert.Equal(t, "second", name)
	_, err = space.DimensionAt(2)
	assert.ErrorIs(t, err, ErrDimensionIndexOutOfRange)

	assert.Equal(t, "si{second,metre}", space.String())
}

func TestNewDimensionSpace_Validation(t *testing.T) {
	tests := []struct {
		name       string
		spaceName  string
		dimensions []string
		wantErr    error
	}{
		{"BlankName", "  ", []string{"a"}, ErrInvalidSpaceName},
		{"BlankDimension", "s", []string{"a", " "}, ErrInvalidDimensionName},
		{"DuplicateDimension", "s", []string{"a", "b", "a"}, ErrDuplicateDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDimensionSpace(tt.spaceName, tt.dimensions...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDimensionSpace_ZeroDimensions(t *testing.T) {
	space, err := NewDimensionSpace("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, space.Cardinality())

	one := Dimensionless(space)
	assert.Equal(t, 0, one.Exponents().Len())
	product, err := MultiplyUnits(one, one)
	require.NoError(t, err)
	assert.True(t, DimensionallyEqual(product, one))
	assert.Equal(t, "1", product.String())
}

func TestDimensionSpace_IdentityIsTag(t *testing.T) {
	a := MustNewDimensionSpace("si", "second", "metre")
	b := MustNewDimensionSpace("si", "second", "metre")

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b), "identically named spaces are still distinct")
	assert.False(t, a.Equals(nil))

	ua, ub := BasicUnit(a, 1), BasicUnit(b, 1)
	assert.False(t, SameDimensionSpace(ua, ub))
	assert.False(t, DimensionallyEqual(ua, ub))
}

func TestBasicUnit_AllIndices(t *testing.T) {
	space := MustNewDimensionSpace("si", "second", "metre", "kilogram", "ampere", "kelvin", "mole", "candela")
	for i, dim := range space.Dimensions() {
		u := BasicUnit(space, i)
		require.Equal(t, space.Cardinality(), u.Exponents().Len())
		assert.Equal(t, Basis(space.Cardinality(), i).Values(), u.Exponents().Values())

		byName, err := BasicUnitOf(space, dim)
		require.NoError(t, err)
		assert.True(t, DimensionallyEqual(u, byName))
	}

	_, err := BasicUnitOf(space, "furlong")
	assert.ErrorIs(t, err, ErrUnknownDimension)
	assert.Panics(t, func() { BasicUnit(space, 7) })
}

func TestUnitScenarios(t *testing.T) {
	_, second, metre, _ := mechanics(t)

	assert.Equal(t, []int{0, 1, 0}, metre.Exponents().Values())
	assert.Equal(t, []int{1, 0, 0}, second.Exponents().Values())

	speed, err := DivideUnits(metre, second)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 1, 0}, speed.Exponents().Values())
	assert.Equal(t, "time^-1·length", speed.String())

	area, err := MultiplyUnits(metre, metre)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0}, area.Exponents().Values())
	assert.Equal(t, "length^2", area.String())
}

func TestMultiplyUnits_Variadic(t *testing.T) {
	_, second, metre, kilogram := mechanics(t)

	single, err := MultiplyUnits(metre)
	require.NoError(t, err)
	assert.True(t, DimensionallyEqual(single, metre))

	odd, err := MultiplyUnits(metre, metre, metre, second, second, kilogram)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, odd.Exponents().Values())

	_, err = MultiplyUnits()
	assert.ErrorIs(t, err, ErrNoUnits)
}

func TestNewtonDerivationsAgree(t *testing.T) {
	_, second, metre, kilogram := mechanics(t)

	newton := MustDivideUnits(MustMultiplyUnits(kilogram, metre), MustMultiplyUnits(second, second))
	stepwise := MustDivideUnits(MustDivideUnits(MustMultiplyUnits(kilogram, metre), second), second)

	assert.True(t, DimensionallyEqual(newton, stepwise))
	assert.Equal(t, []int{-2, 1, 1}, newton.Exponents().Values())

	ratio := MustDivideUnits(newton, stepwise)
	assert.True(t, ratio.IsDimensionless())
}

func TestUnitCombinators_SpaceMismatch(t *testing.T) {
	_, _, metre, _ := mechanics(t)
	other := MustNewDimensionSpace("custom", "asd", "def")
	asd := BasicUnit(other, 0)

	_, err := MultiplyUnits(metre, asd)
	assert.ErrorIs(t, err, ErrDimensionSpaceMismatch)

	_, err = DivideUnits(metre, asd)
	assert.ErrorIs(t, err, ErrDimensionSpaceMismatch)

	var mm *MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "divide", mm.Op)
	assert.Contains(t, err.Error(), "mechanics:length")
	assert.Contains(t, err.Error(), "custom:asd")

	_, err = MultiplyUnits(Unit{}, metre)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

// units enumerates a small family of units for the algebraic properties.
func units(t *testing.T) []Unit {
	space, second, metre, kilogram := mechanics(t)
	out := []Unit{second, metre, kilogram, Dimensionless(space)}
	for _, u := range []Unit{second, metre, kilogram} {
		out = append(out, u.Pow(2), u.Inverse())
	}
	out = append(out, MustDivideUnits(MustMultiplyUnits(kilogram, metre), second.Pow(2)))
	return out
}

func TestUnitAlgebraProperties(t *testing.T) {
	all := units(t)

	for _, a := range all {
		assert.True(t, DimensionallyEqual(a, a), "reflexive: %s", a)

		for _, b := range all {
			ab := MustMultiplyUnits(a, b)
			q := MustDivideUnits(a, b)
			for k := 0; k < a.Exponents().Len(); k++ {
				assert.Equal(t, a.Exponents().At(k)+b.Exponents().At(k), ab.Exponents().At(k))
				assert.Equal(t, a.Exponents().At(k)-b.Exponents().At(k), q.Exponents().At(k))
			}

			assert.True(t, DimensionallyEqual(ab, MustMultiplyUnits(b, a)), "commutative: %s %s", a, b)
			assert.True(t, DimensionallyEqual(MustDivideUnits(ab, b), a), "cancellation: %s %s", a, b)
			assert.Equal(t, DimensionallyEqual(a, b), DimensionallyEqual(b, a), "symmetric: %s %s", a, b)

			for _, c := range all {
				left := MustMultiplyUnits(MustMultiplyUnits(a, b), c)
				right := MustMultiplyUnits(a, MustMultiplyUnits(b, c))
				assert.True(t, DimensionallyEqual(left, right))
			}
		}
	}
}

func TestNewUnit(t *testing.T) {
	space, _, _, _ := mechanics(t)

	u, err := NewUnit(space, NewExponents(-2, 1, 1))
	require.NoError(t, err)
	kg, err := u.Exponent("mass")
	require.NoError(t, err)
	assert.Equal(t, 1, kg)

	_, err = u.Exponent("charge")
	assert.ErrorIs(t, err, ErrUnknownDimension)

	_, err = NewUnit(space, NewExponents(1, 2))
	assert.ErrorIs(t, err, ErrVectorLengthMismatch)

	_, err = NewUnit(nil, NewExponents())
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.False(t, Unit{}.IsValid())
	assert.Equal(t, "<invalid unit>", Unit{}.String())
}

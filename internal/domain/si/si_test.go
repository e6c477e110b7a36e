package si

import (
	"testing"

	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace(t *testing.T) {
	assert.Equal(t, 7, Space.Cardinality())
	assert.Equal(t, SpaceName, Space.Name())

	for i, u := range []vo.Unit{Second, Metre, Kilogram, Ampere, Kelvin, Mole, Candela} {
		assert.Equal(t, vo.Basis(7, i).Values(), u.Exponents().Values())
	}
}

func TestDerivedUnits(t *testing.T) {
	tests := []struct {
		name string
		unit vo.Unit
		want []int
	}{
		{"CubicMetre", CubicMetre, []int{0, 3, 0, 0, 0, 0, 0}},
		{"MetrePerSecond", MetrePerSecond, []int{-1, 1, 0, 0, 0, 0, 0}},
		{"Hertz", Hertz, []int{-1, 0, 0, 0, 0, 0, 0}},
		{"Newton", Newton, []int{-2, 1, 1, 0, 0, 0, 0}},
		{"Pascal", Pascal, []int{-2, -1, 1, 0, 0, 0, 0}},
		{"Joule", Joule, []int{-2, 2, 1, 0, 0, 0, 0}},
		{"Watt", Watt, []int{-3, 2, 1, 0, 0, 0, 0}},
		{"Coulomb", Coulomb, []int{1, 0, 0, 1, 0, 0, 0}},
		{"Volt", Volt, []int{-3, 2, 1, -1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.Exponents().Values())
			assert.True(t, vo.SameDimensionSpace(tt.unit, Metre))
		})
	}
}

func TestNamed_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range Named() {
		require.False(t, seen[n.Name], "duplicate %s", n.Name)
		seen[n.Name] = true
		assert.NotEmpty(t, n.Symbol)
		assert.True(t, n.Unit.IsValid())
	}
}

func TestQuantity_Newton(t *testing.T) {
	force := Quantity(10, Kilogram).Multiply(Quantity(9.81, MetrePerSecondSquared))

	assert.InDelta(t, 98.1, force.Value(), 1e-9)
	assert.True(t, vo.DimensionallyEqual(force.Unit(), Newton))

	work := force.Multiply(Quantity(2, Metre))
	assert.True(t, vo.DimensionallyEqual(work.Unit(), Joule))
}

package entity

import (
	"testing"

	"github.com/hapkiduki/dimension-go/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitDefinition(t *testing.T) {
	space := valueobject.MustNewDimensionSpace("si", "second", "metre")
	metre := valueobject.BasicUnit(space, 1)

	def, err := NewUnitDefinition(" metre ", "m", UnitKindBasic, metre)
	require.NoError(t, err)
	assert.Equal(t, "metre", def.Name)
	assert.Equal(t, "m", def.Symbol)
	assert.Equal(t, "si", def.SpaceName())
	assert.NotEqual(t, [16]byte{}, [16]byte(def.ID))
	assert.False(t, def.CreatedAt.IsZero())

	q := def.Quantity(2.5)
	assert.Equal(t, 2.5, q.Value())
	assert.True(t, valueobject.DimensionallyEqual(q.Unit(), metre))

	def.SetDescription("  length  ")
	assert.Equal(t, "length", def.Description)
}

func TestNewUnitDefinition_Validation(t *testing.T) {
	space := valueobject.MustNewDimensionSpace("si", "second")
	second := valueobject.BasicUnit(space, 0)

	_, err := NewUnitDefinition("", "s", UnitKindBasic, second)
	assert.ErrorIs(t, err, ErrInvalidUnitName)

	_, err = NewUnitDefinition("second", "s", UnitKindBasic, valueobject.Unit{})
	assert.ErrorIs(t, err, ErrInvalidUnit)

	def, err := NewUnitDefinition("second", "", UnitKindBasic, second)
	require.NoError(t, err)
	assert.Equal(t, "second", def.Symbol)
}

// Package entity contains the catalog entities of the domain layer.
package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// Unit definition errors define domain-specific error conditions for catalog units.
var (
	ErrInvalidUnitName = errors.New("unit name cannot be empty")
	ErrInvalidUnit     = errors.New("unit must belong to a dimension space")
)

// UnitKind records how a catalog unit was derived.
type UnitKind string

const (
	UnitKindBasic    UnitKind = "basic"    // A single base dimension
	UnitKindProduct  UnitKind = "product"  // Product of one or more catalog units
	UnitKindQuotient UnitKind = "quotient" // Quotient of two catalog units
)

// UnitDefinition is a named unit registered in a dimension space catalog.
type UnitDefinition struct {
	// ID is the unique identifier for the definition
	ID uuid.UUID `json:"id"`

	// Name is the catalog name, unique within its space (e.g. "newton")
	Name string `json:"name"`

	// Symbol is the conventional symbol (e.g. "N")
	Symbol string `json:"symbol"`

	// Description is free text shown in listings
	Description string `json:"description,omitempty"`

	// Kind records how the unit was derived
	Kind UnitKind `json:"kind"`

	// Unit is the dimension space tag and exponent vector
	Unit valueobject.Unit `json:"-"`

	// CreatedAt is the timestamp when the unit was registered
	CreatedAt time.Time `json:"created_at"`
}

// NewUnitDefinition creates a new UnitDefinition entity.
//
// Parameters:
//   - name: catalog name (required)
//   - symbol: conventional symbol; defaults to name when empty
//   - kind: how the unit was derived
//   - unit: the unit (must belong to a dimension space)
//
// Returns:
//   - *UnitDefinition: newly created definition
//   - error: validation error if input is invalid
func NewUnitDefinition(name, symbol string, kind UnitKind, unit valueobject.Unit) (*UnitDefinition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidUnitName
	}
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = name
	}

	return &UnitDefinition{
		ID:        uuid.New(),
		Name:      name,
		Symbol:    symbol,
		Kind:      kind,
		Unit:      unit,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SpaceName returns the name of the dimension space the unit belongs to.
func (d *UnitDefinition) SpaceName() string {
	return d.Unit.Space().Name()
}

// Quantity creates a quantity of value in this unit.
func (d *UnitDefinition) Quantity(value float64) valueobject.Quantity[float64] {
	return valueobject.NewQuantity(value, d.Unit)
}

// SetDescription updates the free-text description.
func (d *UnitDefinition) SetDescription(description string) {
	d.Description = strings.TrimSpace(description)
}

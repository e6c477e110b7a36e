// Package si declares the International System of Units as a dimension
// space, together with its base units and a set of common derived units.
//
// The space is declared once at package initialization and is read-only
// afterwards, so the units below can be shared freely.
package si

import (
	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// SpaceName is the catalog name of the SI dimension space.
const SpaceName = "si"

// Base dimensions in index order.
const (
	DimensionTime              = "second"
	DimensionLength            = "metre"
	DimensionMass              = "kilogram"
	DimensionCurrent           = "ampere"
	DimensionTemperature       = "kelvin"
	DimensionAmountOfSubstance = "mole"
	DimensionLuminousIntensity = "candela"
)

// Space is the SI dimension space.
var Space = vo.MustNewDimensionSpace(SpaceName,
	DimensionTime,
	DimensionLength,
	DimensionMass,
	DimensionCurrent,
	DimensionTemperature,
	DimensionAmountOfSubstance,
	DimensionLuminousIntensity,
)

// Base units.
var (
	Second   = vo.BasicUnit(Space, 0)
	Metre    = vo.BasicUnit(Space, 1)
	Kilogram = vo.BasicUnit(Space, 2)
	Ampere   = vo.BasicUnit(Space, 3)
	Kelvin   = vo.BasicUnit(Space, 4)
	Mole     = vo.BasicUnit(Space, 5)
	Candela  = vo.BasicUnit(Space, 6)
)

// Derived units.
var (
	SquareMetre           = vo.MustMultiplyUnits(Metre, Metre)
	CubicMetre            = vo.MustMultiplyUnits(Metre, Metre, Metre)
	MetrePerSecond        = vo.MustDivideUnits(Metre, Second)
	MetrePerSecondSquared = vo.MustDivideUnits(MetrePerSecond, Second)
	Hertz                 = Second.Inverse()
	Newton                = vo.MustDivideUnits(vo.MustMultiplyUnits(Kilogram, Metre), vo.MustMultiplyUnits(Second, Second))
	Pascal                = vo.MustDivideUnits(Newton, SquareMetre)
	Joule                 = vo.MustMultiplyUnits(Newton, Metre)
	Watt                  = vo.MustDivideUnits(Joule, Second)
	Coulomb               = vo.MustMultiplyUnits(Ampere, Second)
	Volt                  = vo.MustDivideUnits(Watt, Ampere)
)

// NamedUnit is a catalog seed: a unit with its conventional name and symbol.
type NamedUnit struct {
	Name   string
	Symbol string
	Unit   vo.Unit
}

// Named returns the SI units with their conventional names and symbols,
// base units first.
func Named() []NamedUnit {
	return []NamedUnit{
		{"second", "s", Second},
		{"metre", "m", Metre},
		{"kilogram", "kg", Kilogram},
		{"ampere", "A", Ampere},
		{"kelvin", "K", Kelvin},
		{"mole", "mol", Mole},
		{"candela", "cd", Candela},
		{"square_metre", "m²", SquareMetre},
		{"cubic_metre", "m³", CubicMetre},
		{"metre_per_second", "m/s", MetrePerSecond},
		{"metre_per_second_squared", "m/s²", MetrePerSecondSquared},
		{"hertz", "Hz", Hertz},
		{"newton", "N", Newton},
		{"pascal", "Pa", Pascal},
		{"joule", "J", Joule},
		{"watt", "W", Watt},
		{"coulomb", "C", Coulomb},
		{"volt", "V", Volt},
	}
}

// Quantity creates a float64 quantity in an SI unit.
func Quantity(value float64, unit vo.Unit) vo.Quantity[float64] {
	return vo.NewQuantity(value, unit)
}

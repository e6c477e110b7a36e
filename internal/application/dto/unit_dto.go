package dto

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all request DTOs; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Operation names accepted by CalculateRequest.
const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
	OperationMultiply = "multiply"
	OperationDivide   = "divide"
)

// DeclareSpaceRequest declares a new dimension space.
type DeclareSpaceRequest struct {
	// Name identifies the space in the catalog (e.g. "si").
	Name string `json:"name" validate:"required,max=64"`

	// Dimensions are the ordered base dimension names.
	Dimensions []string `json:"dimensions" validate:"max=32,unique,dive,required,max=64"`
}

// Validate validates the request fields.
func (r *DeclareSpaceRequest) Validate() error {
	return validate.Struct(r)
}

// SpaceResponse describes a declared dimension space.
type SpaceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Dimensions  []string `json:"dimensions"`
	Cardinality int      `json:"cardinality"`
}

// DefineUnitRequest registers a derived unit in a space.
//
// A product unit names one or more Factors; a quotient unit names a
// Dividend and a Divisor. All referenced units must already be registered.
type DefineUnitRequest struct {
	Name        string   `json:"name" validate:"required,max=64"`
	Symbol      string   `json:"symbol,omitempty" validate:"max=16"`
	Description string   `json:"description,omitempty" validate:"max=256"`
	Kind        string   `json:"kind" validate:"required,oneof=product quotient"`
	Factors     []string `json:"factors,omitempty" validate:"required_if=Kind product,dive,required"`
	Dividend    string   `json:"dividend,omitempty" validate:"required_if=Kind quotient"`
	Divisor     string   `json:"divisor,omitempty" validate:"required_if=Kind quotient"`
}

// Validate validates the request fields.
func (r *DefineUnitRequest) Validate() error {
	return validate.Struct(r)
}

// UnitResponse describes a catalog unit.
type UnitResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind"`
	Space       string `json:"space"`

	// Exponents holds one power per base dimension, in space order.
	Exponents []int `json:"exponents"`

	// Expression renders the unit from base dimension names.
	Expression string `json:"expression"`
}

// QuantityDTO is a value expressed in a named catalog unit.
// Space defaults to the space the request is addressed to.
type QuantityDTO struct {
	Value *float64 `json:"value" validate:"required"`
	Unit  string   `json:"unit" validate:"required"`
	Space string   `json:"space,omitempty"`
}

// CalculateRequest applies one arithmetic operation to two quantities.
type CalculateRequest struct {
	Operation string      `json:"operation" validate:"required,oneof=add subtract multiply divide"`
	Left      QuantityDTO `json:"left"`
	Right     QuantityDTO `json:"right"`
}

// Validate validates the request fields.
func (r *CalculateRequest) Validate() error {
	return validate.Struct(r)
}

// CalculateResponse is the result of a calculation.
type CalculateResponse struct {
	// Value is the resulting magnitude; nil when it is not finite.
	Value *float64 `json:"value"`

	// NonFinite is "+Inf", "-Inf" or "NaN" when Value is nil.
	NonFinite string `json:"non_finite,omitempty"`

	// Exponents of the resulting unit, in space order.
	Exponents []int `json:"exponents"`

	// Expression renders the resulting unit from base dimension names.
	Expression string `json:"expression"`

	// MatchedUnit names a registered unit with identical exponents, if any.
	MatchedUnit string `json:"matched_unit,omitempty"`
}

// SetValue stores v, moving non-finite values into NonFinite since JSON
// cannot represent them.
func (r *CalculateResponse) SetValue(v float64) {
	switch {
	case math.IsNaN(v):
		r.NonFinite = "NaN"
	case math.IsInf(v, 1):
		r.NonFinite = "+Inf"
	case math.IsInf(v, -1):
		r.NonFinite = "-Inf"
	default:
		r.Value = &v
	}
}

// CompatibilityResponse answers whether two units can be combined.
type CompatibilityResponse struct {
	Left               string `json:"left"`
	Right              string `json:"right"`
	SameDimensionSpace bool   `json:"same_dimension_space"`
	DimensionallyEqual bool   `json:"dimensionally_equal"`
}

// ValidationErrorsFrom converts a validator error into field-level
// validation errors. It returns nil for any other error.
func ValidationErrorsFrom(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Namespace(),
			Message: "failed on '" + fe.Tag() + "' rule",
			Value:   fe.Value(),
		})
	}
	return out
}

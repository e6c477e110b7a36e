package dto

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestDeclareSpaceRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     DeclareSpaceRequest
		wantErr bool
	}{
		{"Valid", DeclareSpaceRequest{Name: "mech", Dimensions: []string{"time", "length"}}, false},
		{"NoDimensions", DeclareSpaceRequest{Name: "empty"}, false},
		{"MissingName", DeclareSpaceRequest{Dimensions: []string{"time"}}, true},
		{"BlankDimension", DeclareSpaceRequest{Name: "mech", Dimensions: []string{"time", ""}}, true},
		{"DuplicateDimension", DeclareSpaceRequest{Name: "mech", Dimensions: []string{"time", "time"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefineUnitRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     DefineUnitRequest
		wantErr bool
	}{
		{"Product", DefineUnitRequest{Name: "area", Kind: "product", Factors: []string{"metre", "metre"}}, false},
		{"Quotient", DefineUnitRequest{Name: "speed", Kind: "quotient", Dividend: "metre", Divisor: "second"}, false},
		{"ProductWithoutFactors", DefineUnitRequest{Name: "area", Kind: "product"}, true},
		{"QuotientWithoutDivisor", DefineUnitRequest{Name: "speed", Kind: "quotient", Dividend: "metre"}, true},
		{"UnknownKind", DefineUnitRequest{Name: "x", Kind: "power", Factors: []string{"metre"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateRequest_Validate(t *testing.T) {
	valid := CalculateRequest{
		Operation: OperationAdd,
		Left:      QuantityDTO{Value: ptr(0), Unit: "metre"},
		Right:     QuantityDTO{Value: ptr(3.9), Unit: "metre"},
	}
	require.NoError(t, valid.Validate(), "zero is a valid value")

	missing := valid
	missing.Right = QuantityDTO{Unit: "metre"}
	err := missing.Validate()
	require.Error(t, err)

	verrs := ValidationErrorsFrom(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "CalculateRequest.Right.Value", verrs[0].Field)

	badOp := valid
	badOp.Operation = "modulo"
	assert.Error(t, badOp.Validate())
}

func TestValidationErrorsFrom_OtherError(t *testing.T) {
	assert.Nil(t, ValidationErrorsFrom(errors.New("boom")))
}

func TestCalculateResponse_SetValue(t *testing.T) {
	var r CalculateResponse
	r.SetValue(6)
	require.NotNil(t, r.Value)
	assert.Equal(t, 6.0, *r.Value)
	assert.Empty(t, r.NonFinite)

	tests := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		var r CalculateResponse
		r.SetValue(tt.in)
		assert.Nil(t, r.Value)
		assert.Equal(t, tt.want, r.NonFinite)
	}
}

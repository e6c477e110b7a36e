package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/domain/entity"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

var (
	errMalformedBody = errors.New("request body is not valid JSON")
	errBodyTooLarge  = errors.New("request body too large")
)

// invalidInput lists domain errors caused by the caller's input.
var invalidInput = []error{
	repository.ErrInvalidInput,
	vo.ErrInvalidSpaceName,
	vo.ErrInvalidDimensionName,
	vo.ErrDuplicateDimension,
	vo.ErrUnknownDimension,
	vo.ErrDimensionIndexOutOfRange,
	vo.ErrNoUnits,
	vo.ErrInvalidUnit,
	entity.ErrInvalidUnitName,
	entity.ErrInvalidUnit,
	errMalformedBody,
}

// respondError maps err onto a status code and error envelope.
//
//	validation errors          400 VALIDATION_ERROR
//	invalid input              400 INVALID_INPUT
//	oversized body             413 PAYLOAD_TOO_LARGE
//	space or unit not found    404 NOT_FOUND
//	duplicate space or unit    409 CONFLICT
//	unit algebra rejection     422 DIMENSION_MISMATCH
//	division by zero           422 DIVISION_BY_ZERO
//	deadline exceeded          504 TIMEOUT
//	anything else              500 INTERNAL_ERROR
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := h.classify(err)
	resp.Meta = h.meta(r)

	log := h.log.WithContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "path", r.URL.Path, "error", err)
	} else {
		log.Debug("Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (h *Handler) classify(err error) (int, dto.APIResponse[any]) {
	if verrs := dto.ValidationErrorsFrom(err); verrs != nil {
		return http.StatusBadRequest, dto.NewValidationErrorResponse[any](verrs)
	}

	var mismatch *vo.MismatchError
	if errors.As(err, &mismatch) {
		resp := dto.NewErrorResponse[any]("DIMENSION_MISMATCH", err.Error())
		resp.Error.Details = map[string]any{
			"operation":       mismatch.Op,
			"left":            mismatch.Left.String(),
			"left_exponents":  mismatch.Left.Exponents().Values(),
			"right":           mismatch.Right.String(),
			"right_exponents": mismatch.Right.Exponents().Values(),
			"same_space":      vo.SameDimensionSpace(mismatch.Left, mismatch.Right),
		}
		return http.StatusUnprocessableEntity, resp
	}

	switch {
	case errors.Is(err, vo.ErrDimensionSpaceMismatch), errors.Is(err, vo.ErrDimensionalMismatch):
		return http.StatusUnprocessableEntity, dto.NewErrorResponse[any]("DIMENSION_MISMATCH", err.Error())
	case errors.Is(err, vo.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, dto.NewErrorResponse[any]("DIVISION_BY_ZERO", err.Error())
	case repository.IsNotFoundError(err):
		return http.StatusNotFound, dto.NewErrorResponse[any]("NOT_FOUND", err.Error())
	case repository.IsDuplicateError(err):
		return http.StatusConflict, dto.NewErrorResponse[any]("CONFLICT", err.Error())
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, dto.NewErrorResponse[any]("PAYLOAD_TOO_LARGE", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.NewErrorResponse[any]("TIMEOUT", "Request timed out")
	}

	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return http.StatusBadRequest, dto.NewErrorResponse[any]("INVALID_INPUT", err.Error())
		}
	}
	return http.StatusInternalServerError, dto.NewErrorResponse[any]("INTERNAL_ERROR", "An unexpected error occurred")
}

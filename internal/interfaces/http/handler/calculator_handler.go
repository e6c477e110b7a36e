package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hapkiduki/dimension-go/internal/application/dto"
)

// Calculate handles POST /api/v1/spaces/{space}/calculate.
//
// Adding metres to seconds is answered with 422 DIMENSION_MISMATCH; a float
// division by zero succeeds with value null and non_finite "+Inf".
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.calculator.Calculate(r.Context(), chi.URLParam(r, "space"), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, resp)
}

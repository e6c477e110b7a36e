package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/domain/entity"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// DeclareSpace handles POST /api/v1/spaces.
func (h *Handler) DeclareSpace(w http.ResponseWriter, r *http.Request) {
	var req dto.DeclareSpaceRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	space, err := h.catalog.DeclareSpace(r.Context(), req.Name, req.Dimensions)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/spaces/"+space.Name())
	h.respond(w, r, http.StatusCreated, toSpaceResponse(space))
}

// ListSpaces handles GET /api/v1/spaces.
func (h *Handler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.catalog.ListSpaces(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]dto.SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, toSpaceResponse(s))
	}
	h.respond(w, r, http.StatusOK, out)
}

// GetSpace handles GET /api/v1/spaces/{space}.
func (h *Handler) GetSpace(w http.ResponseWriter, r *http.Request) {
	space, err := h.catalog.GetSpace(r.Context(), chi.URLParam(r, "space"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, toSpaceResponse(space))
}

// DefineUnit handles POST /api/v1/spaces/{space}/units.
func (h *Handler) DefineUnit(w http.ResponseWriter, r *http.Request) {
	var req dto.DefineUnitRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	def, err := h.catalog.DefineUnit(r.Context(), chi.URLParam(r, "space"), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/spaces/"+def.SpaceName()+"/units/"+def.Name)
	h.respond(w, r, http.StatusCreated, toUnitResponse(def))
}

// ListUnits handles GET /api/v1/spaces/{space}/units.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	defs, err := h.catalog.ListUnits(r.Context(), chi.URLParam(r, "space"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]dto.UnitResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, toUnitResponse(d))
	}
	h.respond(w, r, http.StatusOK, out)
}

// GetUnit handles GET /api/v1/spaces/{space}/units/{unit}.
func (h *Handler) GetUnit(w http.ResponseWriter, r *http.Request) {
	def, err := h.catalog.GetUnit(r.Context(), chi.URLParam(r, "space"), chi.URLParam(r, "unit"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, toUnitResponse(def))
}

// Compatibility handles GET /api/v1/spaces/{space}/compatibility.
// right_space defaults to the path space.
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	space := chi.URLParam(r, "space")
	q := r.URL.Query()

	left, right := q.Get("left"), q.Get("right")
	if left == "" || right == "" {
		h.respondError(w, r, fmt.Errorf("%w: left and right query parameters are required", repository.ErrInvalidInput))
		return
	}
	rightSpace := q.Get("right_space")
	if rightSpace == "" {
		rightSpace = space
	}

	resp, err := h.catalog.Compatibility(r.Context(), space, left, rightSpace, right)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, resp)
}

func toSpaceResponse(s *vo.DimensionSpace) dto.SpaceResponse {
	return dto.SpaceResponse{
		ID:          s.ID().String(),
		Name:        s.Name(),
		Dimensions:  s.Dimensions(),
		Cardinality: s.Cardinality(),
	}
}

func toUnitResponse(d *entity.UnitDefinition) dto.UnitResponse {
	return dto.UnitResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Symbol:      d.Symbol,
		Description: d.Description,
		Kind:        string(d.Kind),
		Space:       d.SpaceName(),
		Exponents:   d.Unit.Exponents().Values(),
		Expression:  d.Unit.String(),
	}
}

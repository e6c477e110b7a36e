// Package handler exposes the catalog and calculator services over HTTP.
//
// Every response uses the dto.APIResponse envelope. Routes are mounted on a
// chi router by Handler.Routes.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/application/service"
	"github.com/hapkiduki/dimension-go/internal/interfaces/http/middleware"
)

// Handler serves the /api/v1 routes.
type Handler struct {
	catalog    *service.CatalogService
	calculator *service.CalculatorService
	log        port.Logger
	version    string
	started    time.Time
}

// New creates a Handler.
//
// Parameters:
//   - catalog: the catalog service
//   - calculator: the calculator service
//   - log: logger port
//   - version: reported by /health and the X-API-Version header
//
// Returns:
//   - *Handler: the handler
func New(catalog *service.CatalogService, calculator *service.CalculatorService, log port.Logger, version string) *Handler {
	return &Handler{
		catalog:    catalog,
		calculator: calculator,
		log:        log.With("component", "http"),
		version:    version,
		started:    time.Now(),
	}
}

// Routes mounts the API on r.
//
//	GET  /health
//	POST /api/v1/spaces
//	GET  /api/v1/spaces
//	GET  /api/v1/spaces/{space}
//	POST /api/v1/spaces/{space}/units
//	GET  /api/v1/spaces/{space}/units
//	GET  /api/v1/spaces/{space}/units/{unit}
//	GET  /api/v1/spaces/{space}/compatibility?left=&right=&right_space=
//	POST /api/v1/spaces/{space}/calculate
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api/v1/spaces", func(r chi.Router) {
		r.Post("/", h.DeclareSpace)
		r.Get("/", h.ListSpaces)

		r.Route("/{space}", func(r chi.Router) {
			r.Get("/", h.GetSpace)
			r.Post("/units", h.DefineUnit)
			r.Get("/units", h.ListUnits)
			r.Get("/units/{unit}", h.GetUnit)
			r.Get("/compatibility", h.Compatibility)
			r.Post("/calculate", h.Calculate)
		})
	})

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
}

// Health reports liveness together with the catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.catalog.ListSpaces(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Spaces:  len(spaces),
	})
}

// NotFound handles 404 responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, dto.NewErrorResponse[any]("NOT_FOUND", "The requested resource was not found"))
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, dto.NewErrorResponse[any]("METHOD_NOT_ALLOWED", "The requested method is not allowed for this resource"))
}

// respond writes a success envelope.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	resp := dto.NewSuccessResponse(data)
	resp.Meta = h.meta(r)
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (h *Handler) meta(r *http.Request) *dto.ResponseMeta {
	return &dto.ResponseMeta{
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	}
}

// decode reads a JSON body into v and validates it.
func decode[T interface{ Validate() error }](r *http.Request, v T) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return errMalformedBody
	}
	return v.Validate()
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/application/service"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/config"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/metrics"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/dimension-go/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("PORT", "")
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.RateLimit.Burst = 3
	cfg.RateLimit.RequestsPerSecond = 0.001

	prom := metrics.NewPrometheus(cfg.Metrics.Namespace)
	catalog := service.NewCatalogService(memory.NewSpaceRepository(), memory.NewUnitRepository(), port.NopLogger{}, prom)
	calculator := service.NewCalculatorService(catalog, port.NopLogger{}, prom)
	require.NoError(t, catalog.Bootstrap(context.Background(), true, nil))

	r := newRouter(cfg, port.NopLogger{}, prom)
	r.Method(http.MethodGet, cfg.Metrics.Path, prom.Handler())
	handler.New(catalog, calculator, port.NopLogger{}, version).Routes(r)
	return r
}

func TestRouter(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/spaces/si/calculate",
		strings.NewReader(`{"operation":"add","left":{"value":1,"unit":"metre"},"right":{"value":2,"unit":"metre"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, version, rec.Header().Get("X-API-Version"))

	req = httptest.NewRequest(http.MethodPost, "/api/v1/spaces/si/calculate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `dimension_calculator_operations_total{operation="add",outcome="ok"} 1`)
	assert.Contains(t, body, `dimension_http_requests_total{method="POST",route="/api/v1/spaces/{space}/calculate",status="200"} 1`)
	assert.Contains(t, body, `dimension_catalog_spaces_declared_total 1`)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

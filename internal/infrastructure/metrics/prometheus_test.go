package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, p *Prometheus) string {
	t.Helper()
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPrometheus_Counter(t *testing.T) {
	p := NewPrometheus("dimension")

	p.Counter("calculator_operations_total", 1, map[string]string{"operation": "add", "outcome": "ok"})
	p.Counter("calculator_operations_total", 1, map[string]string{"outcome": "ok", "operation": "add"})
	p.Counter("calculator_operations_total", 1, map[string]string{"operation": "add", "outcome": "rejected"})
	p.Counter("calculator_operations_total", -5, map[string]string{"operation": "add", "outcome": "ok"})
	p.Counter("catalog_spaces_declared_total", 3, nil)

	body := scrape(t, p)
	assert.Contains(t, body, `dimension_calculator_operations_total{operation="add",outcome="ok"} 2`)
	assert.Contains(t, body, `dimension_calculator_operations_total{operation="add",outcome="rejected"} 1`)
	assert.Contains(t, body, `dimension_catalog_spaces_declared_total 3`)
	assert.Contains(t, body, "go_goroutines")
}

func TestPrometheus_MismatchedLabelsDropped(t *testing.T) {
	p := NewPrometheus("dimension")

	p.Counter("requests_total", 1, map[string]string{"route": "/a"})
	assert.NotPanics(t, func() {
		p.Counter("requests_total", 1, map[string]string{"route": "/a", "extra": "x"})
		p.Counter("requests_total", 1, nil)
	})

	assert.Contains(t, scrape(t, p), `dimension_requests_total{route="/a"} 1`)
}

func TestPrometheus_GaugeHistogramTiming(t *testing.T) {
	p := NewPrometheus("dimension")

	p.Gauge("catalog_units", 18, map[string]string{"space": "si"})
	p.Gauge("catalog_units", 19, map[string]string{"space": "si"})
	p.Histogram("payload_bytes", 512, nil)
	p.Timing("calculator_operation_duration", 20*time.Millisecond, map[string]string{"operation": "divide"})

	body := scrape(t, p)
	assert.Contains(t, body, `dimension_catalog_units{space="si"} 19`)
	assert.Contains(t, body, `dimension_payload_bytes_count 1`)
	assert.Contains(t, body, `dimension_calculator_operation_duration_seconds_count{operation="divide"} 1`)
}

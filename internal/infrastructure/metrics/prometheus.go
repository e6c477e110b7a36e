// Package metrics implements port.Metrics on a private Prometheus registry.
//
// Collectors are created lazily on first use. The label names of a metric
// are fixed by the first observation; later observations with a different
// label set are dropped.
package metrics

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus records application metrics as Prometheus collectors.
type Prometheus struct {
	namespace string
	registry  *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

var _ port.Metrics = (*Prometheus)(nil)

// NewPrometheus creates a recorder whose metric names are prefixed by
// namespace. Go runtime and process collectors are registered alongside.
func NewPrometheus(namespace string) *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Prometheus{
		namespace:  namespace,
		registry:   reg,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Counter implements port.Metrics.
func (p *Prometheus) Counter(name string, value float64, tags map[string]string) {
	if value < 0 {
		return
	}
	p.mu.Lock()
	vec, ok := p.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Counter " + name + ".",
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.counters[name] = vec
	}
	p.mu.Unlock()

	if c, err := vec.GetMetricWith(prometheus.Labels(tags)); err == nil {
		c.Add(value)
	}
}

// Gauge implements port.Metrics.
func (p *Prometheus) Gauge(name string, value float64, tags map[string]string) {
	p.mu.Lock()
	vec, ok := p.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Gauge " + name + ".",
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.gauges[name] = vec
	}
	p.mu.Unlock()

	if g, err := vec.GetMetricWith(prometheus.Labels(tags)); err == nil {
		g.Set(value)
	}
}

// Histogram implements port.Metrics.
func (p *Prometheus) Histogram(name string, value float64, tags map[string]string) {
	p.mu.Lock()
	vec, ok := p.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Histogram " + name + ".",
			Buckets:   prometheus.DefBuckets,
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.histograms[name] = vec
	}
	p.mu.Unlock()

	if h, err := vec.GetMetricWith(prometheus.Labels(tags)); err == nil {
		h.Observe(value)
	}
}

// Timing implements port.Metrics. Durations are observed in seconds on a
// histogram named name_seconds.
func (p *Prometheus) Timing(name string, duration time.Duration, tags map[string]string) {
	p.Histogram(name+"_seconds", duration.Seconds(), tags)
}

// register must be called with p.mu held.
func (p *Prometheus) register(c prometheus.Collector) bool {
	return p.registry.Register(c) == nil
}

func labelNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

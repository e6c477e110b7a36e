// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the catalog and calculator services need from the outside
// world: structured logging and metrics.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
package port

import (
	"context"
	"time"
)

// Logger defines the interface for structured logging.
// The zap-backed pkg/logger is adapted to it in cmd/dimensiond.
//
// Example usage:
//
//	log.Info("Unit defined", "space", "si", "unit", "newton")
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With return a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// Metrics defines the interface for recording application metrics.
// The Prometheus adapter lives in internal/infrastructure/metrics.
type Metrics interface {
	// Counter increments a counter metric.
	Counter(name string, value float64, tags map[string]string)

	// Gauge sets a gauge metric value.
	Gauge(name string, value float64, tags map[string]string)

	// Histogram records a value in a histogram.
	Histogram(name string, value float64, tags map[string]string)

	// Timing records a timing/duration metric.
	Timing(name string, duration time.Duration, tags map[string]string)
}

// NopLogger is a Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }
func (n NopLogger) WithContext(context.Context) Logger { return n }

// NopMetrics is a Metrics that records nothing.
type NopMetrics struct{}

func (NopMetrics) Counter(string, float64, map[string]string) {}
func (NopMetrics) Gauge(string, float64, map[string]string) {}
func (NopMetrics) Histogram(string, float64, map[string]string) {}
func (NopMetrics) Timing(string, time.Duration, map[string]string) {}

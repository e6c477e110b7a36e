// Package logging adapts the zap-backed pkg/logger to port.Logger.
package logging

import (
	"context"

	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/pkg/logger"
)

// Adapter adapts *logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

var _ port.Logger = (*Adapter)(nil)

// New wraps l.
func New(l *logger.Logger) *Adapter {
	return &Adapter{l}
}

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}

package extensions

import (
	"context"
	"time"

	lazy "github.com/pumped-fn/lazy-go"
	"go.uber.org/zap"
)

// LoggingExtension logs cell and graph operations through a zap logger.
// Successful operations log at debug level, failures at error level.
type LoggingExtension struct {
	lazy.BaseExtension
	logger *zap.Logger
}

// NewLoggingExtension creates a new logging extension
func NewLoggingExtension(logger *zap.Logger) *LoggingExtension {
	return &LoggingExtension{
		BaseExtension: lazy.NewBaseExtension("logging"),
		logger:        logger,
	}
}

func (e *LoggingExtension) Wrap(ctx context.Context, next func() (any, error), op *lazy.Operation) (any, error) {
	start := time.Now()
	result, err := next()

	fields := []zap.Field{
		zap.String("operation", string(op.Kind)),
		zap.String("graph", op.Graph.ID()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if op.Cell != nil {
		fields = append(fields, zap.String("cell", lazy.CellName().GetOrDefault(op.Cell, "unnamed")))
	}

	if err != nil {
		e.logger.Error("operation failed", append(fields, zap.Error(err))...)
	} else {
		e.logger.Debug("operation completed", fields...)
	}

	return result, err
}

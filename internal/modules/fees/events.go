package fees

import "go.uber.org/zap"

// LogEvents writes fee diagnostics to a zap logger: a warning when geodata
// was missing, an error when the distance math faulted and was recovered.
type LogEvents struct {
	log *zap.Logger
}

func NewLogEvents(log *zap.Logger) *LogEvents {
	return &LogEvents{log: log}
}

func (e *LogEvents) FallbackApplied(sellerID string, reason FallbackReason, err error) {
	fields := []zap.Field{
		zap.String("seller_id", sellerID),
		zap.String("reason", string(reason)),
	}
	if reason == FallbackComputationFailure {
		e.log.Error("delivery fee fell back to default", append(fields, zap.Error(err))...)
		return
	}
	e.log.Warn("delivery fee fell back to default", fields...)
}

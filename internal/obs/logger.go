// Package obs builds the service-wide structured logger.
package obs

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// NewLogger constructs a production zap logger emitting JSON to stderr.
// MARKET_LOG_LEVEL selects the level, defaulting to info.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if lvl := strings.TrimSpace(os.Getenv("MARKET_LOG_LEVEL")); lvl != "" {
		if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(lvl))); err != nil {
			return nil, fmt.Errorf("parse MARKET_LOG_LEVEL: %w", err)
		}
	}
	return cfg.Build()
}

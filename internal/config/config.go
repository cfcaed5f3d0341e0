// Package config loads service settings from the environment.
package config

import "os"

type Config struct {
	// Currency is the ISO code all fees are quoted in.
	Currency string
	DB       struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
}

// Load reads configuration from the environment. The vendor directory
// backends are optional: an empty DSN or Redis address disables that backend
// and fee computation proceeds on the coordinates supplied by the caller.
func Load() (Config, error) {
	var cfg Config
	cfg.Currency = envOrDefault("MARKET_CURRENCY", "GHS")
	cfg.DB.DSN = os.Getenv("MARKET_DB_DSN")
	cfg.Redis.Addr = os.Getenv("MARKET_REDIS_ADDR")
	cfg.Maps.APIKey = os.Getenv("MARKET_MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
//
// Recognized variables:
//
//	SAFELINE_DB               — database path
//	SAFELINE_FALL_THRESHOLD   — float
//	SAFELINE_SMS_DELAY        — duration string, e.g. "500ms"
//	SAFELINE_SIGNAL_INTERVAL  — duration string, e.g. "2s"
//
// Unset or unparseable variables leave the current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SAFELINE_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SAFELINE_FALL_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FallThreshold = f
		}
	}
	if v := os.Getenv("SAFELINE_SMS_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SMSDelay = d
		}
	}
	if v := os.Getenv("SAFELINE_SIGNAL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SignalInterval = d
		}
	}
}

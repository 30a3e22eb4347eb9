package config

import "time"

// Config holds runtime settings for the Safeline CLI.
//
// Fields:
//   - DatabasePath: filesystem path of the local SQLite store.
//   - FallThreshold: acceleration magnitude above which a fall is assumed.
//   - SMSDelay: pause between the call and the SMS of the combined action.
//   - SignalInterval: tick of the simulated device-signal providers.
type Config struct {
	DatabasePath   string
	FallThreshold  float64
	SMSDelay       time.Duration
	SignalInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "safeline.db"
	c.FallThreshold = 30
	c.SMSDelay = 500 * time.Millisecond
	c.SignalInterval = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present), a JSON file (if
// provided), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

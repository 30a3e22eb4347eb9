package config

import (
	"encoding/json"
	"os"
	"time"

	"safeline/internal/flagx"
	"safeline/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "500ms" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JSONConfig struct {
	DatabasePath   *string         `json:"database_path"`
	FallThreshold  *float64        `json:"fall_threshold"`
	SMSDelay       *timex.Duration `json:"sms_delay"`
	SignalInterval *timex.Duration `json:"signal_interval"`
}

// parseJSON overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, nothing is loaded. Absent
// fields keep their current values; read or unmarshal errors panic (caller
// may recover).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.FallThreshold != nil {
		cfg.FallThreshold = *jc.FallThreshold
	}
	if jc.SMSDelay != nil {
		cfg.SMSDelay = time.Duration(jc.SMSDelay.Duration)
	}
	if jc.SignalInterval != nil {
		cfg.SignalInterval = time.Duration(jc.SignalInterval.Duration)
	}
}

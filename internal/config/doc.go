// Package config loads runtime configuration for the Safeline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     path to the local database
//	-t float      fall-detection acceleration threshold
//	-s duration   delay between call and SMS of the combined action
//	-i duration   tick interval of the simulated device signals
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "500ms" or integer nanoseconds:
//
//	{
//	  "database_path": "safeline.db",
//	  "fall_threshold": 30,
//	  "sms_delay": "500ms",
//	  "signal_interval": "2s"
//	}
package config

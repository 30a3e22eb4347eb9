package config

import (
	"flag"
	"os"

	"safeline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string     database path (default from Config)
//	-t float      fall-detection threshold (default from Config)
//	-s duration   call-then-SMS delay (default from Config)
//	-i duration   simulated signal interval (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-s", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.Float64Var(&cfg.FallThreshold, "t", cfg.FallThreshold, "fall-detection acceleration threshold")
	fs.DurationVar(&cfg.SMSDelay, "s", cfg.SMSDelay, "delay between call and SMS of the combined action")
	fs.DurationVar(&cfg.SignalInterval, "i", cfg.SignalInterval, "tick interval of the simulated device signals")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

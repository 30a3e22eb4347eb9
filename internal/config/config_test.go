package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"safeline"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "safeline.db", cfg.DatabasePath)
	assert.Equal(t, 30.0, cfg.FallThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.SMSDelay)
	assert.Equal(t, 2*time.Second, cfg.SignalInterval)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "safeline.db", cfg.DatabasePath)
}

func TestParseEnv_Overrides(t *testing.T) {
	withArgs(t)
	t.Setenv("SAFELINE_DB", "/tmp/other.db")
	t.Setenv("SAFELINE_FALL_THRESHOLD", "42.5")
	t.Setenv("SAFELINE_SMS_DELAY", "1s")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, 42.5, cfg.FallThreshold)
	assert.Equal(t, time.Second, cfg.SMSDelay)
	assert.Equal(t, 2*time.Second, cfg.SignalInterval)
}

func TestParseEnv_InvalidValuesIgnored(t *testing.T) {
	withArgs(t)
	t.Setenv("SAFELINE_FALL_THRESHOLD", "not-a-number")
	t.Setenv("SAFELINE_SMS_DELAY", "not-a-duration")

	cfg := LoadConfig()
	assert.Equal(t, 30.0, cfg.FallThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.SMSDelay)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-d", "/tmp/flag.db", "-t", "25", "-s", "250ms", "-i", "5s")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
	assert.Equal(t, 25.0, cfg.FallThreshold)
	assert.Equal(t, 250*time.Millisecond, cfg.SMSDelay)
	assert.Equal(t, 5*time.Second, cfg.SignalInterval)
}

func TestParseFlags_OverrideEnv(t *testing.T) {
	withArgs(t, "-d", "/tmp/flag.db")
	t.Setenv("SAFELINE_DB", "/tmp/env.db")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
}

func TestParseJSON_Overrides(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = file.WriteString(`{
		"database_path": "/tmp/json.db",
		"fall_threshold": 15,
		"sms_delay": "750ms",
		"signal_interval": 1000000000
	}`)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	withArgs(t, "-c", file.Name())

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	assert.Equal(t, 15.0, cfg.FallThreshold)
	assert.Equal(t, 750*time.Millisecond, cfg.SMSDelay)
	assert.Equal(t, time.Second, cfg.SignalInterval)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = file.WriteString(`{"database_path": "/tmp/partial.db"}`)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	withArgs(t, "-config", file.Name())

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/partial.db", cfg.DatabasePath)
	assert.Equal(t, 30.0, cfg.FallThreshold)
}

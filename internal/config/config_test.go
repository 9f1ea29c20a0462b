package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.GridSize)
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, 6, cfg.DurationHours)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "fire-spread-steps", cfg.KafkaTopic)
	assert.Equal(t, 5*time.Second, cfg.PublishTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SIM_GRID_SIZE", "64")
	t.Setenv("SIM_SEED", "-9")
	t.Setenv("SIM_DURATION_HOURS", "24")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-steps")
	t.Setenv("PUBLISH_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.GridSize)
	assert.Equal(t, int64(-9), cfg.Seed)
	assert.Equal(t, 24, cfg.DurationHours)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-steps", cfg.KafkaTopic)
	assert.Equal(t, 2*time.Second, cfg.PublishTimeout)
}

func TestLoad_ZeroDurationAllowed(t *testing.T) {
	t.Setenv("SIM_DURATION_HOURS", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DurationHours)
}

func TestLoad_InvalidGridSize(t *testing.T) {
	for _, v := range []string{"0", "-4", "big"} {
		t.Setenv("SIM_GRID_SIZE", v)
		_, err := Load()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "SIM_GRID_SIZE")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SIM_DURATION_HOURS", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIM_DURATION_HOURS")
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("SIM_SEED", "abc")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIM_SEED")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidPublishTimeout(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLISH_TIMEOUT")
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_KafkaExplicitlyDisabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

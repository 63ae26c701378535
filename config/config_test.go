package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./config/flights.txt", cfg.Catalog.Path)
	assert.Equal(t, "booking-events", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_PATH", "/etc/flights.txt")
	t.Setenv("KAFKA_BROKERS", "kafka:9092")

	v := viper.New()
	setDefaults(v)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/etc/flights.txt", cfg.Catalog.Path)
	assert.Equal(t, "kafka:9092", cfg.Kafka.Brokers)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BOOKING_TEST_KEY", "set")

	assert.Equal(t, "set", GetEnv("BOOKING_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BOOKING_TEST_MISSING", "fallback"))
}

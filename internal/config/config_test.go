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

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 2, cfg.FeedRetries)
	assert.Equal(t, time.Duration(0), cfg.PollInterval)

	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "quake-feed-snapshots", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FEED_URL", "https://example.com/feed.geojson")
	t.Setenv("FEED_TIMEOUT", "5s")
	t.Setenv("FEED_RETRIES", "0")
	t.Setenv("POLL_INTERVAL", "1m")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-topic")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://example.com/feed.geojson", cfg.FeedURL)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 0, cfg.FeedRetries)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-topic", cfg.KafkaTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeFeedTimeout(t *testing.T) {
	t.Setenv("FEED_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_TIMEOUT")
}

func TestLoad_NegativeFeedRetries(t *testing.T) {
	t.Setenv("FEED_RETRIES", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_RETRIES")
}

func TestLoad_NegativePollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "-30s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_KafkaEnabledRequiresTopic(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_TOPIC", "")

	// The topic default backfills an empty env var, so only an explicitly
	// empty brokers list can fail validation.
	t.Setenv("KAFKA_BROKERS", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultFeedURL is the USGS all-day GeoJSON summary feed.
const DefaultFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Feed client settings.
	FeedURL     string
	FeedTimeout time.Duration
	FeedRetries int

	// PollInterval enables timer-driven refresh when > 0. The default is 0:
	// one fetch at startup, then manual refresh only.
	PollInterval time.Duration

	// Optional snapshot publishing to Kafka.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	feedTimeout, err := parseDurationEnv("FEED_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	feedRetries, err := parseIntEnv("FEED_RETRIES", 2)
	if err != nil {
		return nil, err
	}

	pollInterval, err := parsePollInterval()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FeedURL:     envOrDefault("FEED_URL", DefaultFeedURL),
		FeedTimeout: feedTimeout,
		FeedRetries: feedRetries,

		PollInterval: pollInterval,

		KafkaEnabled: os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers: parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "quake-feed-snapshots"),
	}

	if cfg.FeedURL == "" {
		return nil, errors.New("FEED_URL is required")
	}
	if cfg.FeedRetries < 0 {
		return nil, errors.New("FEED_RETRIES must not be negative")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is empty")
		}
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := envOrDefault(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}

// parsePollInterval allows zero (periodic refresh disabled) but rejects
// negative or unparseable values.
func parsePollInterval() (time.Duration, error) {
	raw := envOrDefault("POLL_INTERVAL", "0")
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid POLL_INTERVAL: %q", raw)
	}
	return d, nil
}

func parseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

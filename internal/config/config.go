// Package config holds the service settings. Values come from a viper
// instance that layers defaults, CITIDLE_* environment variables, and any
// command-line flags the caller has bound.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the Citidle commands.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DatasetPath overrides the embedded dataset when non-empty.
	DatasetPath   string
	MinPopulation int

	// SessionTTL is how long an idle session is kept before the registry
	// discards it.
	SessionTTL time.Duration

	// Guess analytics publishing (disabled by default).
	EventsEnabled bool
	KafkaBrokers  []string
	KafkaTopic    string
}

// NewViper returns a viper instance with Citidle defaults and CITIDLE_*
// environment binding. Callers may bind flags onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CITIDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http-addr", ":8080")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "json")
	v.SetDefault("shutdown-timeout", 10*time.Second)
	v.SetDefault("dataset", "")
	v.SetDefault("min-population", 300000)
	v.SetDefault("session-ttl", time.Hour)
	v.SetDefault("events-enabled", false)
	v.SetDefault("kafka-brokers", "localhost:9092")
	v.SetDefault("kafka-topic", "citidle-guesses")

	return v
}

// Load reads and validates settings from the viper instance.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPAddr:        v.GetString("http-addr"),
		LogLevel:        v.GetString("log-level"),
		LogFormat:       v.GetString("log-format"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		DatasetPath:     v.GetString("dataset"),
		MinPopulation:   v.GetInt("min-population"),
		SessionTTL:      v.GetDuration("session-ttl"),
		EventsEnabled:   v.GetBool("events-enabled"),
		KafkaBrokers:    splitBrokers(v.GetString("kafka-brokers")),
		KafkaTopic:      strings.TrimSpace(v.GetString("kafka-topic")),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("http-addr is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid log-format %q (must be json or text)", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("shutdown-timeout must be positive")
	}
	if cfg.MinPopulation < 0 {
		return nil, errors.New("min-population must not be negative")
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("session-ttl must be positive")
	}
	if cfg.EventsEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("events-enabled requires kafka-brokers")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("events-enabled requires kafka-topic")
		}
	}
	return cfg, nil
}

// splitBrokers parses a comma-separated broker list, dropping empty entries.
func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

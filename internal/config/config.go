// Package config handles application configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults mirror the upstream deployment constants.
const (
	DefaultRegion               = "us-east-1"
	DefaultRawBucket            = "healthcare-facility"
	DefaultRawKey               = "raw/sample_facility_data.json"
	DefaultTransformedBucket    = "healthcare-facility"
	DefaultTransformedKey       = "transformed/expiring_facilities.json"
	DefaultAthenaDatabase       = "healthcare_facility_db"
	DefaultAthenaOutputLocation = "s3://healthcare-facility/athena_results/"
	DefaultArchiveBucket        = "healthcare-facility"
	DefaultArchivePrefix        = "transformed/"
	DefaultPollMaxAttempts      = 20
	DefaultPollDelay            = 3 * time.Second
	DefaultListenAddr           = ":8080"
)

// Config holds configuration for both pipeline jobs and the event listener.
type Config struct {
	// AWS access. KeyID/Secret are optional — when unset the default
	// credential chain is used. Endpoint enables S3-compatible stores
	// (path-style addressing).
	Region   string
	KeyID    *string
	Secret   *string
	Endpoint *string

	// Expiry-filter job locations.
	RawBucket         string
	RawKey            string
	TransformedBucket string
	TransformedKey    string

	// Aggregation job locations.
	AthenaDatabase       string
	AthenaOutputLocation string // transient result location, s3:// URI
	ArchiveBucket        string
	ArchivePrefix        string

	// Polling budget for the aggregation job: attempts x delay is the
	// total window granted to the query service.
	PollMaxAttempts int
	PollDelay       time.Duration

	LogLevel   string // debug, info, warn, error (default "info")
	ListenAddr string // event listener address (default ":8080")
}

// LoadFromEnv loads configuration from environment variables, applying
// documented defaults for anything unset.
func LoadFromEnv() *Config {
	cfg := &Config{
		Region:               envOrDefault("REGION", DefaultRegion),
		RawBucket:            envOrDefault("RAW_BUCKET", DefaultRawBucket),
		RawKey:               envOrDefault("RAW_KEY", DefaultRawKey),
		TransformedBucket:    envOrDefault("TRANSFORMED_BUCKET", DefaultTransformedBucket),
		TransformedKey:       envOrDefault("TRANSFORMED_KEY", DefaultTransformedKey),
		AthenaDatabase:       envOrDefault("ATHENA_DATABASE", DefaultAthenaDatabase),
		AthenaOutputLocation: envOrDefault("ATHENA_OUTPUT_LOCATION", DefaultAthenaOutputLocation),
		ArchiveBucket:        envOrDefault("ARCHIVE_BUCKET", DefaultArchiveBucket),
		ArchivePrefix:        envOrDefault("ARCHIVE_PREFIX", DefaultArchivePrefix),
		PollMaxAttempts:      DefaultPollMaxAttempts,
		PollDelay:            DefaultPollDelay,
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		ListenAddr:           envOrDefault("LISTEN_ADDR", DefaultListenAddr),
	}

	// Credentials are optional — only set if present.
	if v := os.Getenv("KEY_ID"); v != "" {
		cfg.KeyID = &v
	}
	if v := os.Getenv("SECRET"); v != "" {
		cfg.Secret = &v
	}
	if v := os.Getenv("ENDPOINT"); v != "" {
		cfg.Endpoint = &v
	}

	if v := os.Getenv("POLL_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PollMaxAttempts = n
		}
	}
	if v := os.Getenv("POLL_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollDelay = d
		}
	}

	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.PollMaxAttempts <= 0 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be positive")
	}
	if c.PollDelay < 0 {
		return fmt.Errorf("POLL_DELAY must not be negative")
	}
	if !strings.HasPrefix(c.AthenaOutputLocation, "s3://") {
		return fmt.Errorf("ATHENA_OUTPUT_LOCATION must be an s3:// URI")
	}
	if (c.KeyID == nil) != (c.Secret == nil) {
		return fmt.Errorf("KEY_ID and SECRET must be set together")
	}
	return nil
}

// HasStaticCredentials returns true when an explicit key pair is configured.
func (c *Config) HasStaticCredentials() bool {
	return c.KeyID != nil && c.Secret != nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

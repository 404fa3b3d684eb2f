package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REGION", "KEY_ID", "SECRET", "ENDPOINT",
		"RAW_BUCKET", "RAW_KEY", "TRANSFORMED_BUCKET", "TRANSFORMED_KEY",
		"ATHENA_DATABASE", "ATHENA_OUTPUT_LOCATION", "ARCHIVE_BUCKET", "ARCHIVE_PREFIX",
		"POLL_MAX_ATTEMPTS", "POLL_DELAY", "LOG_LEVEL", "LISTEN_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadFromEnv()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Nil(t, cfg.KeyID)
	assert.Nil(t, cfg.Secret)
	assert.Nil(t, cfg.Endpoint)
	assert.Equal(t, "healthcare-facility", cfg.RawBucket)
	assert.Equal(t, "raw/sample_facility_data.json", cfg.RawKey)
	assert.Equal(t, "transformed/expiring_facilities.json", cfg.TransformedKey)
	assert.Equal(t, "healthcare_facility_db", cfg.AthenaDatabase)
	assert.Equal(t, "s3://healthcare-facility/athena_results/", cfg.AthenaOutputLocation)
	assert.Equal(t, "transformed/", cfg.ArchivePrefix)
	assert.Equal(t, 20, cfg.PollMaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.PollDelay)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REGION", "eu-central-1")
	t.Setenv("KEY_ID", "testkey")
	t.Setenv("SECRET", "testsecret")
	t.Setenv("RAW_BUCKET", "feed-bucket")
	t.Setenv("POLL_MAX_ATTEMPTS", "5")
	t.Setenv("POLL_DELAY", "250ms")

	cfg := LoadFromEnv()

	assert.Equal(t, "eu-central-1", cfg.Region)
	require.NotNil(t, cfg.KeyID)
	assert.Equal(t, "testkey", *cfg.KeyID)
	assert.Equal(t, "feed-bucket", cfg.RawBucket)
	assert.Equal(t, 5, cfg.PollMaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.PollDelay)
	assert.True(t, cfg.HasStaticCredentials())
}

func TestLoadFromEnv_MalformedNumbersKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_MAX_ATTEMPTS", "lots")
	t.Setenv("POLL_DELAY", "soon")

	cfg := LoadFromEnv()

	assert.Equal(t, DefaultPollMaxAttempts, cfg.PollMaxAttempts)
	assert.Equal(t, DefaultPollDelay, cfg.PollDelay)
}

func TestValidate(t *testing.T) {
	key := "k"
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults_valid", mutate: func(*Config) {}, wantErr: ""},
		{
			name:    "zero_attempts",
			mutate:  func(c *Config) { c.PollMaxAttempts = 0 },
			wantErr: "POLL_MAX_ATTEMPTS",
		},
		{
			name:    "negative_delay",
			mutate:  func(c *Config) { c.PollDelay = -time.Second },
			wantErr: "POLL_DELAY",
		},
		{
			name:    "bad_output_location",
			mutate:  func(c *Config) { c.AthenaOutputLocation = "http://bucket/results/" },
			wantErr: "ATHENA_OUTPUT_LOCATION",
		},
		{
			name:    "key_without_secret",
			mutate:  func(c *Config) { c.KeyID = &key },
			wantErr: "KEY_ID and SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := LoadFromEnv()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
		{level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3Path(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{
			name:       "simple_path",
			input:      "s3://healthcare-facility/athena_results/abc123.csv",
			wantBucket: "healthcare-facility",
			wantKey:    "athena_results/abc123.csv",
		},
		{
			name:       "nested_key",
			input:      "s3://bucket/a/b/c/file.json",
			wantBucket: "bucket",
			wantKey:    "a/b/c/file.json",
		},
		{name: "wrong_scheme", input: "https://bucket/key", wantErr: true},
		{name: "no_scheme", input: "bucket/key", wantErr: true},
		{name: "empty_key", input: "s3://bucket/", wantErr: true},
		{name: "bucket_only", input: "s3://bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseS3Path(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

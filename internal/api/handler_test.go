package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-pipeline/internal/config"
	"facility-pipeline/internal/domain"
	"facility-pipeline/internal/service/aggregate"
	"facility-pipeline/internal/testutil"
)

func testHandler(runner domain.QueryRunner, store domain.ObjectStore) *Handler {
	cfg := &config.Config{
		AthenaDatabase:       "healthcare_facility_db",
		AthenaOutputLocation: "s3://results-bucket/athena_results/",
		ArchiveBucket:        "archive-bucket",
		ArchivePrefix:        "transformed/",
		PollMaxAttempts:      3,
		PollDelay:            time.Millisecond,
	}
	agg := aggregate.NewService(runner, store, cfg, slog.New(slog.DiscardHandler))
	return NewHandler(agg, slog.New(slog.DiscardHandler))
}

func TestHandleEvent_Success(t *testing.T) {
	runner := &testutil.MockQueryRunner{
		SubmitFn: func(context.Context, string, string, string) (string, error) {
			return "exec-1", nil
		},
		StateFn: func(context.Context, string) (domain.QueryState, error) {
			return domain.QueryStateSucceeded, nil
		},
		OutputLocationFn: func(context.Context, string) (string, error) {
			return "s3://results-bucket/athena_results/exec-1.csv", nil
		},
	}
	h := testHandler(runner, &testutil.MockObjectStore{})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"Records":[]}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result aggregate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 200, result.StatusCode)
	assert.Contains(t, result.Body.ResultPath, "s3://archive-bucket/transformed/state_counts_")
}

func TestHandleEvent_QueryFailureMapsToBadGateway(t *testing.T) {
	runner := &testutil.MockQueryRunner{
		SubmitFn: func(context.Context, string, string, string) (string, error) {
			return "exec-1", nil
		},
		StateFn: func(context.Context, string) (domain.QueryState, error) {
			return domain.QueryStateFailed, nil
		},
	}
	h := testHandler(runner, &testutil.MockObjectStore{})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "FAILED")
}

func TestHandleEvent_TimeoutMapsToGatewayTimeout(t *testing.T) {
	runner := &testutil.MockQueryRunner{
		SubmitFn: func(context.Context, string, string, string) (string, error) {
			return "exec-1", nil
		},
		StateFn: func(context.Context, string) (domain.QueryState, error) {
			return domain.QueryStateRunning, nil
		},
	}
	h := testHandler(runner, &testutil.MockObjectStore{})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, 3, runner.StateCalls)
}

func TestHealthz(t *testing.T) {
	h := testHandler(&testutil.MockQueryRunner{}, &testutil.MockObjectStore{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

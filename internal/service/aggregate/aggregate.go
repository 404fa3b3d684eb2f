// Package aggregate implements the aggregation-and-archive job: it submits
// the state-counts query to the query service, polls it to a terminal state,
// and archives the resulting CSV under a timestamped key.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"facility-pipeline/internal/config"
	"facility-pipeline/internal/domain"
	"facility-pipeline/internal/storage"
)

// stateCountsQueryTmpl counts, per state, the distinct facilities holding at
// least one accreditation. The database name is substituted from config.
const stateCountsQueryTmpl = `SELECT
    location.state,
    COUNT(DISTINCT facility_id) AS accredited_facility_count
FROM %s.raw
WHERE cardinality(accreditations) > 0
GROUP BY location.state`

// archiveTimestampLayout formats the UTC copy time to second precision.
const archiveTimestampLayout = "20060102T150405Z"

// Result is the structured success payload returned to the invoking runtime.
type Result struct {
	StatusCode int        `json:"statusCode"`
	Body       ResultBody `json:"body"`
}

// ResultBody carries the human-readable outcome and the archive destination.
type ResultBody struct {
	Message    string `json:"message"`
	ResultPath string `json:"result_path"`
}

// Service runs the aggregation job against a query runner and object store.
type Service struct {
	runner domain.QueryRunner
	store  domain.ObjectStore
	cfg    *config.Config
	logger *slog.Logger

	// sleep and now are replaced in tests to make polling and archive
	// naming deterministic.
	sleep func(time.Duration)
	now   func() time.Time
}

// NewService creates an aggregation service.
func NewService(runner domain.QueryRunner, store domain.ObjectStore, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		runner: runner,
		store:  store,
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Submit starts the state-counts query and returns its handle immediately.
func (s *Service) Submit(ctx context.Context) (string, error) {
	sqlText := fmt.Sprintf(stateCountsQueryTmpl, s.cfg.AthenaDatabase)
	s.logger.Info("submitting state counts query",
		"database", s.cfg.AthenaDatabase,
		"output_location", s.cfg.AthenaOutputLocation)

	executionID, err := s.runner.Submit(ctx, sqlText, s.cfg.AthenaDatabase, s.cfg.AthenaOutputLocation)
	if err != nil {
		return "", fmt.Errorf("submit state counts query: %w", err)
	}
	s.logger.Info("started query execution", "execution_id", executionID)
	return executionID, nil
}

// Poll fetches the execution state up to the configured attempt budget with
// a fixed delay between attempts. The first terminal state observed is
// returned immediately; exhausting the budget yields a PollTimeoutError.
func (s *Service) Poll(ctx context.Context, executionID string) (domain.QueryState, error) {
	for attempt := 1; attempt <= s.cfg.PollMaxAttempts; attempt++ {
		state, err := s.runner.State(ctx, executionID)
		if err != nil {
			return "", fmt.Errorf("poll query execution: %w", err)
		}
		s.logger.Info("query execution state", "state", state, "attempt", attempt)

		if state.Terminal() {
			return state, nil
		}
		s.sleep(s.cfg.PollDelay)
	}
	return "", domain.ErrPollTimeout(s.cfg.PollMaxAttempts)
}

// Archive copies the execution's result artifact from the transient output
// location to the durable archive prefix under a timestamped name, returning
// the fully qualified destination path.
func (s *Service) Archive(ctx context.Context, executionID string) (string, error) {
	outputLocation, err := s.runner.OutputLocation(ctx, executionID)
	if err != nil {
		return "", fmt.Errorf("resolve query output location: %w", err)
	}

	srcBucket, srcKey, err := storage.ParseS3Path(outputLocation)
	if err != nil {
		return "", fmt.Errorf("parse query output location: %w", err)
	}

	timestamp := s.now().UTC().Format(archiveTimestampLayout)
	destKey := fmt.Sprintf("%sstate_counts_%s.csv", s.cfg.ArchivePrefix, timestamp)

	s.logger.Info("archiving query result",
		"source", outputLocation,
		"destination", fmt.Sprintf("s3://%s/%s", s.cfg.ArchiveBucket, destKey))

	if err := s.store.Copy(ctx, srcBucket, srcKey, s.cfg.ArchiveBucket, destKey); err != nil {
		return "", fmt.Errorf("archive query result: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", s.cfg.ArchiveBucket, destKey), nil
}

// Run executes the job end to end for one trigger event. The event payload
// is logged but not inspected. A terminal state other than SUCCEEDED and an
// exhausted polling budget are both fatal, as distinct error kinds.
func (s *Service) Run(ctx context.Context, event []byte) (*Result, error) {
	s.logger.Info("received trigger event", "payload", string(event))

	executionID, err := s.Submit(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.Poll(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if state != domain.QueryStateSucceeded {
		s.logger.Error("query did not succeed", "state", state)
		return nil, domain.ErrQueryFailed(state)
	}

	resultPath, err := s.Archive(ctx, executionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("state counts archived", "result_path", resultPath)
	return &Result{
		StatusCode: 200,
		Body: ResultBody{
			Message:    "state counts query completed",
			ResultPath: resultPath,
		},
	}, nil
}

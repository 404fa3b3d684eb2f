// Package transform implements the expiry-filter batch job: it reads the raw
// facility feed, keeps facilities with an accreditation expiring within the
// horizon, and writes the filtered set as a single JSON artifact.
package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"facility-pipeline/internal/config"
	"facility-pipeline/internal/domain"
)

// expiryHorizonMonths is the forward-looking window for flagging
// soon-to-expire accreditations.
const expiryHorizonMonths = 6

// isoDateLayouts are the accepted valid_until formats, tried in order.
var isoDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Service runs the expiry-filter job against an object store.
type Service struct {
	store  domain.ObjectStore
	cfg    *config.Config
	logger *slog.Logger

	// now is the clock used to anchor the expiry horizon; replaced in
	// tests for deterministic cutoffs.
	now func() time.Time
}

// NewService creates a transform service.
func NewService(store domain.ObjectStore, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// ParseRecords decodes one facility per non-empty line of a newline-delimited
// JSON body. Malformed lines are logged and skipped; input order is preserved
// for the records that parse.
func ParseRecords(body []byte, logger *slog.Logger) []domain.Facility {
	var facilities []domain.Facility
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var f domain.Facility
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			logger.Error("skipping malformed feed line", "error", err, "line", line)
			continue
		}
		facilities = append(facilities, f)
	}
	return facilities
}

// isExpiring reports whether a valid_until date falls on or before the
// cutoff. Unparseable dates are logged and treated as not expiring, so a bad
// record never aborts the batch.
func (s *Service) isExpiring(validUntil string, cutoff time.Time) bool {
	d, err := parseISODate(validUntil)
	if err != nil {
		s.logger.Error("cannot check accreditation expiry", "error", err, "valid_until", validUntil)
		return false
	}
	return !d.After(cutoff)
}

// FilterExpiring returns the order-preserving subsequence of facilities with
// at least one accreditation expiring on or before now + 6 months. The cutoff
// is computed once so every record in the batch sees the same horizon.
func (s *Service) FilterExpiring(facilities []domain.Facility) []domain.Facility {
	cutoff := dateOnly(s.now()).AddDate(0, expiryHorizonMonths, 0)
	s.logger.Info("filtering facilities with accreditation expiring on or before cutoff",
		"cutoff", cutoff.Format("2006-01-02"))

	var expiring []domain.Facility
	for _, facility := range facilities {
		for _, acc := range facility.Accreditations {
			if s.isExpiring(acc.ValidUntil, cutoff) {
				s.logger.Info("accreditation is expiring",
					"facility", facility.Name,
					"accreditation_body", acc.Body,
					"valid_until", acc.ValidUntil)
				expiring = append(expiring, facility)
				break
			}
		}
	}

	s.logger.Info("filtered facilities",
		"total", len(facilities), "expiring", len(expiring))
	return expiring
}

// Run executes one pass of the job: fetch, parse, filter, write. Fetch and
// write failures are logged and absorbed — a missing or unreadable feed
// yields an empty input set instead of aborting the invocation.
func (s *Service) Run(ctx context.Context) {
	s.logger.Info("starting facility transform",
		"source", fmt.Sprintf("s3://%s/%s", s.cfg.RawBucket, s.cfg.RawKey))

	facilities := s.fetchAll(ctx)
	expiring := s.FilterExpiring(facilities)
	s.write(ctx, expiring)

	s.logger.Info("facility transform finished")
}

// fetchAll reads and parses the raw feed, returning an empty set on any
// storage failure.
func (s *Service) fetchAll(ctx context.Context) []domain.Facility {
	body, err := s.store.Get(ctx, s.cfg.RawBucket, s.cfg.RawKey)
	if err != nil {
		s.logger.Error("failed to read raw feed", "error", err)
		return nil
	}
	facilities := ParseRecords(body, s.logger)
	s.logger.Info("parsed raw feed", "facilities", len(facilities))
	return facilities
}

// write marshals the filtered set as a JSON array and overwrites the
// transformed artifact. An empty set still produces a valid artifact.
func (s *Service) write(ctx context.Context, facilities []domain.Facility) {
	if facilities == nil {
		facilities = []domain.Facility{}
	}
	data, err := json.Marshal(facilities)
	if err != nil {
		s.logger.Error("failed to encode transformed artifact", "error", err)
		return
	}

	dest := fmt.Sprintf("s3://%s/%s", s.cfg.TransformedBucket, s.cfg.TransformedKey)
	s.logger.Info("writing transformed artifact", "facilities", len(facilities), "destination", dest)
	if err := s.store.Put(ctx, s.cfg.TransformedBucket, s.cfg.TransformedKey, data, "application/json"); err != nil {
		s.logger.Error("failed to write transformed artifact", "error", err, "destination", dest)
	}
}

// parseISODate parses an ISO-8601 date or datetime string, normalized to a
// date at midnight UTC for comparison against the cutoff.
func parseISODate(value string) (time.Time, error) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO date %q", value)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package transform

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the transform job on a cron schedule instead of one-shot.
type Scheduler struct {
	cron   *cron.Cron
	svc    *Service
	logger *slog.Logger
}

// NewScheduler creates a scheduler for the given transform service.
func NewScheduler(svc *Service, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		logger: logger,
	}
}

// Start registers the schedule and starts the cron loop. The spec uses the
// standard 5-field cron format.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.svc.Run(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("transform scheduler started", "schedule", spec)
	return nil
}

// Stop gracefully stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("transform scheduler stopped")
}

package service

import (
	"context"
	"log/slog"
	"time"
)

// DefaultActivityRetention is how long activity records are kept.
const DefaultActivityRetention = 30 * 24 * time.Hour

// KeyRotator is implemented by signing key rings that can roll their key.
type KeyRotator interface {
	Rotate() error
}

// HousekeepingService periodically prunes old activity records and, when a
// KeyRotator is set, rolls the session signing key.
type HousekeepingService struct {
	Activity  *ActivityService
	Keys      KeyRotator
	Logger    *slog.Logger
	Metrics   *Metrics
	Interval  time.Duration
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour and a non-positive retention to
// DefaultActivityRetention.
func NewHousekeepingService(activity *ActivityService, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultActivityRetention
	}

	return &HousekeepingService{
		Activity:  activity,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Prune immediately on startup; the key is only rotated on ticks.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
			s.rotate()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes activity older than the retention window.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	deleted, remaining, err := s.Activity.Prune(ctx, s.Retention)
	if err != nil {
		s.Logger.Error("failed to prune activity", "error", err)
		return
	}
	s.Metrics.prunedActivity(deleted, remaining)
	s.Logger.Info("housekeeping cleanup completed", "deleted_activity", deleted, "remaining_activity", remaining)
}

func (s *HousekeepingService) rotate() {
	if s.Keys == nil {
		return
	}
	if err := s.Keys.Rotate(); err != nil {
		s.Logger.Error("failed to rotate session signing key", "error", err)
		return
	}
	s.Logger.Info("session signing key rotated")
}

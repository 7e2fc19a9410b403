package study_session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweeper periodically removes expired sessions from a Service.
type Sweeper struct {
	scheduler *gocron.Scheduler
	service   Service
	interval  time.Duration
	logger    *slog.Logger
}

// NewSweeper creates a sweeper running every interval. A non-positive
// interval uses DefaultSweepInterval.
func NewSweeper(service Service, interval time.Duration, logger *slog.Logger) *Sweeper {
	if service == nil {
		panic("service cannot be nil") // ALLOW-PANIC
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &Sweeper{
		scheduler: s,
		service:   service,
		interval:  interval,
		logger:    logger.With(slog.String("component", "session_sweeper")),
	}
}

// Start schedules the sweep job and starts the scheduler without blocking.
// The first sweep runs after one interval.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	s.scheduler.StartAsync()

	s.logger.Info("session sweeper started", slog.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler. Safe to call on a sweeper that never started.
func (s *Sweeper) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
		s.logger.Info("session sweeper stopped")
	}
}

func (s *Sweeper) run() {
	s.service.Sweep(context.Background())
}

package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfare/internal/infra/metrics"
	"wayfare/internal/pkg/clock"
	"wayfare/internal/pkg/config"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/queries"
)

const (
	sweepCompletion = "completion"
	sweepReminder   = "reminder"
)

// SweepSource selects the bookings each sweep should touch.
type SweepSource interface {
	DueForCompletion(ctx context.Context, now time.Time, limit int32) ([]*queries.BookingView, error)
	DueForReminder(ctx context.Context, now time.Time, window time.Duration, limit int32) ([]*queries.BookingView, error)
}

// Scheduler runs the booking maintenance sweeps: completing finished trips
// and reminding customers about upcoming ones. Sweeps run once at start and
// then on every tick. One failing booking never stops a sweep, and the two
// sweeps are independent of each other.
type Scheduler struct {
	source   SweepSource
	bookings commands.BookingCommands
	clock    clock.Clock
	cfg      config.SchedulerConfig

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(source SweepSource, bookings commands.BookingCommands, clk clock.Clock, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		source:   source,
		bookings: bookings,
		clock:    clk,
		cfg:      cfg,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	slog.Info("scheduler started",
		"interval", s.cfg.Interval.String(),
		"reminder_window", s.cfg.ReminderWindow.String())

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes both sweeps. Exported so tests and operational tooling can
// trigger a pass without the ticker.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.sweepCompletions(ctx)
	s.sweepReminders(ctx)
}

func (s *Scheduler) sweepCompletions(ctx context.Context) {
	start := time.Now()
	now := s.clock.Now()

	due, err := s.source.DueForCompletion(ctx, now, s.cfg.SweepLimit)
	if err != nil {
		slog.Error("completion sweep query failed", "error", err.Error())
		metrics.IncSweepRun(sweepCompletion, "error")
		return
	}

	var failed int
	for _, b := range due {
		if err := s.bookings.CompleteBooking(ctx, b.ID); err != nil {
			failed++
			slog.Error("failed to complete booking", "booking_id", b.ID, "error", err.Error())
			metrics.IncSweepItem(sweepCompletion, "error")
			continue
		}
		metrics.IncSweepItem(sweepCompletion, "ok")
	}

	metrics.IncSweepRun(sweepCompletion, "ok")
	metrics.ObserveSweepDuration(sweepCompletion, time.Since(start).Seconds())
	if len(due) > 0 {
		slog.Info("completion sweep finished", "due", len(due), "failed", failed)
	}
}

func (s *Scheduler) sweepReminders(ctx context.Context) {
	start := time.Now()
	now := s.clock.Now()

	due, err := s.source.DueForReminder(ctx, now, s.cfg.ReminderWindow, s.cfg.SweepLimit)
	if err != nil {
		slog.Error("reminder sweep query failed", "error", err.Error())
		metrics.IncSweepRun(sweepReminder, "error")
		return
	}

	var failed int
	for _, b := range due {
		if err := s.bookings.RemindTrip(ctx, b.ID, b.CustomerID); err != nil {
			failed++
			slog.Error("failed to send trip reminder", "booking_id", b.ID, "error", err.Error())
			metrics.IncSweepItem(sweepReminder, "error")
			continue
		}
		metrics.IncSweepItem(sweepReminder, "ok")
	}

	metrics.IncSweepRun(sweepReminder, "ok")
	metrics.ObserveSweepDuration(sweepReminder, time.Since(start).Seconds())
	if len(due) > 0 {
		slog.Info("reminder sweep finished", "due", len(due), "failed", failed)
	}
}

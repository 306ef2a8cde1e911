//go:build unit

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"wayfare/internal/pkg/clock"
	"wayfare/internal/pkg/config"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/scheduler"
	"wayfare/internal/usecase/queries"
	"wayfare/tests/common/builder"
	commandsmock "wayfare/tests/mock/commands"
	schedulermock "wayfare/tests/mock/scheduler"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newScheduler(t *testing.T) (*scheduler.Scheduler, *schedulermock.MockSweepSource, *commandsmock.MockBookingCommands, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := schedulermock.NewMockSweepSource(ctrl)
	bookings := commandsmock.NewMockBookingCommands(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC))

	cfg := config.SchedulerConfig{
		Interval:       time.Hour,
		ReminderWindow: 24 * time.Hour,
		SweepLimit:     500,
	}
	return scheduler.New(source, bookings, clk, cfg), source, bookings, clk
}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("completes finished trips and reminds upcoming ones", func(t *testing.T) {
		s, source, bookings, clk := newScheduler(t)
		now := clk.Now()

		finished := builder.NewBookingBuilder().BuildView()
		upcoming := builder.NewBookingBuilder().BuildView()

		source.EXPECT().DueForCompletion(ctx, now, int32(500)).
			Return([]*queries.BookingView{finished}, nil)
		source.EXPECT().DueForReminder(ctx, now, 24*time.Hour, int32(500)).
			Return([]*queries.BookingView{upcoming}, nil)
		bookings.EXPECT().CompleteBooking(ctx, finished.ID).Return(nil)
		bookings.EXPECT().RemindTrip(ctx, upcoming.ID, upcoming.CustomerID).Return(nil)

		s.RunOnce(ctx)
	})

	t.Run("one failing booking does not stop the sweep", func(t *testing.T) {
		s, source, bookings, clk := newScheduler(t)
		now := clk.Now()

		first := builder.NewBookingBuilder().BuildView()
		second := builder.NewBookingBuilder().BuildView()

		source.EXPECT().DueForCompletion(ctx, now, int32(500)).
			Return([]*queries.BookingView{first, second}, nil)
		source.EXPECT().DueForReminder(ctx, now, 24*time.Hour, int32(500)).Return(nil, nil)
		bookings.EXPECT().CompleteBooking(ctx, first.ID).Return(errs.New("deadlock"))
		bookings.EXPECT().CompleteBooking(ctx, second.ID).Return(nil)

		s.RunOnce(ctx)
	})

	t.Run("completion sweep failure leaves the reminder sweep running", func(t *testing.T) {
		s, source, bookings, clk := newScheduler(t)
		now := clk.Now()

		upcoming := builder.NewBookingBuilder().BuildView()

		source.EXPECT().DueForCompletion(ctx, now, int32(500)).
			Return(nil, errs.New("connection refused"))
		source.EXPECT().DueForReminder(ctx, now, 24*time.Hour, int32(500)).
			Return([]*queries.BookingView{upcoming}, nil)
		bookings.EXPECT().RemindTrip(ctx, upcoming.ID, upcoming.CustomerID).Return(nil)

		s.RunOnce(ctx)
	})

	t.Run("empty sweeps touch nothing", func(t *testing.T) {
		s, source, _, clk := newScheduler(t)
		now := clk.Now()

		source.EXPECT().DueForCompletion(ctx, now, int32(500)).Return(nil, nil)
		source.EXPECT().DueForReminder(ctx, now, 24*time.Hour, int32(500)).Return(nil, nil)

		s.RunOnce(ctx)
	})
}

func TestStartStop(t *testing.T) {
	s, source, _, _ := newScheduler(t)

	started := make(chan struct{})
	source.EXPECT().DueForCompletion(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, int32) ([]*queries.BookingView, error) {
			close(started)
			return nil, nil
		})
	source.EXPECT().DueForReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	s.Start(context.Background())
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("initial sweep never ran")
	}
	s.Stop()
	assert.NotPanics(t, s.Stop)
}

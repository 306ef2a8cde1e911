//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/notification"
	"wayfare/internal/domain/pricing"
	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/infra/events"
	"wayfare/internal/pkg/clock"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/notify"
	"wayfare/internal/usecase/queries"
	"wayfare/tests/common/builder"
	"wayfare/tests/common/testutil"
	queriesmock "wayfare/tests/mock/queries"
	sharedmock "wayfare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	bookings      *sharedmock.MockBookingRepository
	tripDates     *sharedmock.MockTripDateRepository
	notifications *sharedmock.MockNotificationRepository
	availability  *queriesmock.MockAvailabilityEngine
	queries       *queriesmock.MockBookingQueries
	publisher     *testutil.RecordingPublisher
	uc            commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingFixture{
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		tripDates:     sharedmock.NewMockTripDateRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		availability:  queriesmock.NewMockAvailabilityEngine(ctrl),
		queries:       queriesmock.NewMockBookingQueries(ctrl),
		publisher:     &testutil.RecordingPublisher{},
	}

	uow := testutil.NewFakeUoW(&testutil.FakeTx{
		BookingsRepo:      f.bookings,
		TripDatesRepo:     f.tripDates,
		NotificationsRepo: f.notifications,
	})

	f.uc = commands.NewBookingUseCase(
		uow,
		f.availability,
		f.queries,
		notify.NewDispatcher(notify.NoopDeliverer{}),
		f.publisher,
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)
	return f
}

// expectDispatch wires the ledger calls a fresh notification produces.
func (f *bookingFixture) expectDispatch(nType notification.Type, bookingID uuid.UUID) {
	f.notifications.EXPECT().
		Exists(gomock.Any(), gomock.Any(), nType, bookingID).
		Return(false, nil)
	f.notifications.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.New(), nil)
}

func availableQuote() *pricing.Quote {
	return &pricing.Quote{
		BasePrice:  decimal.NewFromInt(400),
		Tax:        decimal.NewFromInt(40),
		ServiceFee: decimal.NewFromInt(20),
		Total:      decimal.NewFromInt(460),
		Currency:   "USD",
		Nights:     2,
		Guests:     2,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("flexible-date booking succeeds", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		cmd := b.BuildCreateCommand()

		f.availability.EXPECT().Check(ctx, gomock.Any()).Return(queries.Availability{Available: true}, nil)
		f.availability.EXPECT().Quote(ctx, gomock.Any()).Return(availableQuote(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.queries.EXPECT().GetByID(ctx, gomock.Any()).Return(b.BuildView(), nil)

		view, err := f.uc.CreateBooking(ctx, cmd)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, []string{events.BookingCreated}, f.publisher.Types())
	})

	t.Run("the supplied total price is persisted, not the quote", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		cmd := b.BuildCreateCommand()
		cmd.TotalPrice = decimal.NewFromFloat(512.50)

		f.availability.EXPECT().Check(ctx, gomock.Any()).Return(queries.Availability{Available: true}, nil)
		f.availability.EXPECT().Quote(ctx, gomock.Any()).Return(availableQuote(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, created *booking.Booking) (uuid.UUID, error) {
				assert.True(t, created.TotalPrice.Equal(cmd.TotalPrice),
					"persisted %s, supplied %s", created.TotalPrice, cmd.TotalPrice)
				assert.Equal(t, "USD", created.Currency)
				return created.ID, nil
			})
		f.queries.EXPECT().GetByID(ctx, gomock.Any()).Return(b.BuildView(), nil)

		_, err := f.uc.CreateBooking(ctx, cmd)
		require.NoError(t, err)
	})

	t.Run("unavailable listing is rejected before insert", func(t *testing.T) {
		f := newBookingFixture(t)
		cmd := builder.NewBookingBuilder().BuildCreateCommand()

		f.availability.EXPECT().Check(ctx, gomock.Any()).
			Return(queries.Availability{Available: false, Reason: "listing is not active"}, nil)

		_, err := f.uc.CreateBooking(ctx, cmd)
		assert.ErrorIs(t, err, commands.ErrNotAvailable)
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("insert conflict maps to not available", func(t *testing.T) {
		f := newBookingFixture(t)
		cmd := builder.NewBookingBuilder().BuildCreateCommand()

		f.availability.EXPECT().Check(ctx, gomock.Any()).Return(queries.Availability{Available: true}, nil)
		f.availability.EXPECT().Quote(ctx, gomock.Any()).Return(availableQuote(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("booking dates conflict", errs.New("23P01"), infra.KindConflict))

		_, err := f.uc.CreateBooking(ctx, cmd)
		assert.ErrorIs(t, err, commands.ErrNotAvailable)
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("trip-date booking reserves seats", func(t *testing.T) {
		f := newBookingFixture(t)
		tripDateID := uuid.New()
		b := builder.NewBookingBuilder().WithTripDate(tripDateID)
		cmd := b.BuildCreateCommand()

		f.availability.EXPECT().Check(ctx, gomock.Any()).Return(queries.Availability{Available: true}, nil)
		f.availability.EXPECT().Quote(ctx, gomock.Any()).Return(availableQuote(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.tripDates.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), tripDateID, cmd.Guests).Return(true, nil)
		f.queries.EXPECT().GetByID(ctx, gomock.Any()).Return(b.BuildView(), nil)

		_, err := f.uc.CreateBooking(ctx, cmd)
		require.NoError(t, err)
	})

	t.Run("seat reservation failure rolls back", func(t *testing.T) {
		f := newBookingFixture(t)
		tripDateID := uuid.New()
		cmd := builder.NewBookingBuilder().WithTripDate(tripDateID).BuildCreateCommand()

		f.availability.EXPECT().Check(ctx, gomock.Any()).Return(queries.Availability{Available: true}, nil)
		f.availability.EXPECT().Quote(ctx, gomock.Any()).Return(availableQuote(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.tripDates.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), tripDateID, cmd.Guests).Return(false, nil)

		_, err := f.uc.CreateBooking(ctx, cmd)
		assert.ErrorIs(t, err, commands.ErrNotAvailable)
		assert.Empty(t, f.publisher.Types())
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirming a pending booking", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		snap := b.BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusConfirmed).Return(nil)
		f.expectDispatch(notification.TypeBookingConfirmed, snap.ID)
		f.queries.EXPECT().GetByID(ctx, snap.ID).Return(b.WithStatus(booking.StatusConfirmed).BuildView(), nil)

		view, err := f.uc.UpdateStatus(ctx, snap.ID, "CONFIRMED")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)
		assert.Equal(t, []string{events.BookingConfirmed}, f.publisher.Types())
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.UpdateStatus(ctx, uuid.New(), "SHIPPED")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		snap := b.BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

		_, err := f.uc.UpdateStatus(ctx, snap.ID, "CONFIRMED")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("re-applying the current status is a no-op", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		snap := b.BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		f.queries.EXPECT().GetByID(ctx, snap.ID).Return(b.BuildView(), nil)

		_, err := f.uc.UpdateStatus(ctx, snap.ID, "CONFIRMED")
		require.NoError(t, err)
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := uuid.New()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("find booking", errs.New("no rows"), infra.KindNotFound))

		_, err := f.uc.UpdateStatus(ctx, id, "CONFIRMED")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to paid", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewBookingBuilder()
		snap := b.BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		f.bookings.EXPECT().SetPaymentStatus(gomock.Any(), gomock.Any(), snap.ID, booking.PaymentPaid, nil).Return(nil)
		f.queries.EXPECT().GetByID(ctx, snap.ID).Return(b.WithPaymentStatus(booking.PaymentPaid).BuildView(), nil)

		view, err := f.uc.UpdatePaymentStatus(ctx, snap.ID, "PAID")
		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaid.String(), view.PaymentStatus)
	})

	t.Run("skipping paid is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

		_, err := f.uc.UpdatePaymentStatus(ctx, snap.ID, "REFUNDED")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels and seats are released", func(t *testing.T) {
		f := newBookingFixture(t)
		tripDateID := uuid.New()
		b := builder.NewBookingBuilder().WithTripDate(tripDateID).WithStatus(booking.StatusConfirmed)
		snap := b.BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCancelled).Return(nil)
		f.tripDates.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), tripDateID, snap.Guests).Return(nil)
		f.expectDispatch(notification.TypeBookingCancelled, snap.ID)
		f.queries.EXPECT().GetByID(ctx, snap.ID).Return(b.WithStatus(booking.StatusCancelled).BuildView(), nil)

		view, err := f.uc.CancelBooking(ctx, snap.ID, snap.CustomerID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled.String(), view.Status)
		assert.Equal(t, []string{events.BookingCancelled}, f.publisher.Types())
	})

	t.Run("someone else's booking looks missing", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

		_, err := f.uc.CancelBooking(ctx, snap.ID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
		assert.Empty(t, f.publisher.Types())
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking completes with a rating prompt", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCompleted).Return(nil)
		f.expectDispatch(notification.TypeRateTrip, snap.ID)

		require.NoError(t, f.uc.CompleteBooking(ctx, snap.ID))
		assert.Equal(t, []string{events.BookingCompleted}, f.publisher.Types())
	})

	t.Run("already completed booking is a silent no-op", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildSnapshot()

		f.bookings.EXPECT().FindStateForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)

		require.NoError(t, f.uc.CompleteBooking(ctx, snap.ID))
		assert.Empty(t, f.publisher.Types())
	})
}

func TestRemindTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("first reminder is filed", func(t *testing.T) {
		f := newBookingFixture(t)
		bookingID, customerID := uuid.New(), uuid.New()

		f.expectDispatch(notification.TypeTripReminder, bookingID)

		require.NoError(t, f.uc.RemindTrip(ctx, bookingID, customerID))
	})

	t.Run("replayed reminder dedups on the ledger", func(t *testing.T) {
		f := newBookingFixture(t)
		bookingID, customerID := uuid.New(), uuid.New()

		f.notifications.EXPECT().
			Exists(gomock.Any(), gomock.Any(), notification.TypeTripReminder, bookingID).
			Return(true, nil)

		require.NoError(t, f.uc.RemindTrip(ctx, bookingID, customerID))
	})
}

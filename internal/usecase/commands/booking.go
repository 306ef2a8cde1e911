package commands

import (
	"context"
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/notification"
	"wayfare/internal/infra"
	"wayfare/internal/infra/events"
	"wayfare/internal/pkg/clock"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/notify"
	"wayfare/internal/usecase/queries"
	"wayfare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrNotAvailable     = errs.New("booking is not available")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateBookingCommand struct {
	CustomerID      uuid.UUID
	ListingID       uuid.UUID
	TripDateID      *uuid.UUID
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          int32
	TotalPrice      decimal.Decimal
	SpecialRequests *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, customerID uuid.UUID) (*queries.BookingView, error)
	// CompleteBooking and RemindTrip back the background sweeps.
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) error
	RemindTrip(ctx context.Context, bookingID, customerID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	availability   queries.AvailabilityEngine
	bookingQueries queries.BookingQueries
	dispatcher     *notify.Dispatcher
	publisher      events.Publisher
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	availability queries.AvailabilityEngine,
	bookingQueries queries.BookingQueries,
	dispatcher *notify.Dispatcher,
	publisher events.Publisher,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		availability:   availability,
		bookingQueries: bookingQueries,
		dispatcher:     dispatcher,
		publisher:      publisher,
		clock:          clock,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error) {
	checkParams := queries.CheckParams{
		ListingID:  cmd.ListingID,
		TripDateID: cmd.TripDateID,
		CheckIn:    cmd.CheckIn,
		CheckOut:   cmd.CheckOut,
		Guests:     cmd.Guests,
	}

	result, err := u.availability.Check(ctx, checkParams)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, errs.Mark(errs.New(result.Reason), ErrNotAvailable)
	}

	// Quoting and committing are separate steps: the caller books at the
	// price it was quoted, and that price is persisted as supplied. The
	// quote here only settles the currency.
	quote, err := u.availability.Quote(ctx, checkParams)
	if err != nil {
		return nil, err
	}

	var stay *booking.Stay
	if cmd.CheckIn != nil && cmd.CheckOut != nil {
		s, err := booking.NewStay(*cmd.CheckIn, *cmd.CheckOut)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		stay = &s
	}

	b, err := booking.New(booking.NewBookingParams{
		CustomerID:      cmd.CustomerID,
		ListingID:       cmd.ListingID,
		TripDateID:      cmd.TripDateID,
		Stay:            stay,
		Guests:          cmd.Guests,
		TotalPrice:      cmd.TotalPrice,
		Currency:        quote.Currency,
		SpecialRequests: cmd.SpecialRequests,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race to another booking between the check and the
				// insert; same answer as the pre-check would have given.
				return errs.Mark(errs.New("selected dates are not available (conflicting bookings)"), ErrNotAvailable)
			}
			return err
		}

		if cmd.TripDateID != nil {
			reserved, err := tx.TripDates().ReserveSeats(ctx, tx.DB(), *cmd.TripDateID, cmd.Guests)
			if err != nil {
				return err
			}
			if !reserved {
				return errs.Mark(errs.New("trip date does not have enough seats left"), ErrNotAvailable)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, events.BookingCreated, b.ID, b.CustomerID, b.ListingID)

	return u.bookingQueries.GetByID(ctx, b.ID)
}

func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error) {
	target, err := booking.ParseStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var outcome *transitionOutcome
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome, err = u.transition(ctx, tx, bookingID, target, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.publishOutcome(ctx, outcome)

	return u.bookingQueries.GetByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error) {
	target, err := booking.ParsePaymentStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !snap.PaymentStatus.CanTransitionTo(target) {
			return errs.Wrapf(booking.ErrInvalidTransition, "payment status %s -> %s", snap.PaymentStatus, target)
		}
		if snap.PaymentStatus == target {
			return nil
		}
		return tx.Bookings().SetPaymentStatus(ctx, tx.DB(), bookingID, target, nil)
	})
	if err != nil {
		return nil, err
	}

	return u.bookingQueries.GetByID(ctx, bookingID)
}

// CancelBooking is customer-initiated and owner scoped: someone else's
// booking looks like it does not exist.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, customerID uuid.UUID) (*queries.BookingView, error) {
	var outcome *transitionOutcome
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		outcome, err = u.transition(ctx, tx, bookingID, booking.StatusCancelled, &customerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.publishOutcome(ctx, outcome)

	return u.bookingQueries.GetByID(ctx, bookingID)
}

// CompleteBooking moves one CONFIRMED booking to COMPLETED. Bookings another
// worker already completed are a silent no-op so sweeps can overlap.
func (u *bookingUseCaseImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	var outcome *transitionOutcome
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if snap.Status != booking.StatusConfirmed {
			return nil
		}
		outcome, err = u.applyTransition(ctx, tx, snap, booking.StatusCompleted)
		return err
	})
	if err != nil {
		return err
	}

	u.publishOutcome(ctx, outcome)
	return nil
}

// RemindTrip files a trip reminder, once per booking ever.
func (u *bookingUseCaseImpl) RemindTrip(ctx context.Context, bookingID, customerID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := u.dispatcher.Dispatch(ctx, tx, notification.TripReminder(customerID, bookingID))
		return err
	})
}

type transitionOutcome struct {
	event      string
	bookingID  uuid.UUID
	customerID uuid.UUID
	listingID  uuid.UUID
}

func (u *bookingUseCaseImpl) lockBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Bookings().FindStateForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return snap, nil
}

func (u *bookingUseCaseImpl) transition(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, target booking.Status, owner *uuid.UUID) (*transitionOutcome, error) {
	snap, err := u.lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if owner != nil && snap.CustomerID != *owner {
		return nil, ErrBookingNotFound
	}
	if !snap.Status.CanTransitionTo(target) {
		return nil, errs.Wrapf(booking.ErrInvalidTransition, "status %s -> %s", snap.Status, target)
	}
	if snap.Status == target {
		return nil, nil
	}
	return u.applyTransition(ctx, tx, snap, target)
}

// applyTransition writes the new status and its side effects: seat release on
// cancellation, the per-status notification, and the event to publish after
// commit.
func (u *bookingUseCaseImpl) applyTransition(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, target booking.Status) (*transitionOutcome, error) {
	if err := tx.Bookings().SetStatus(ctx, tx.DB(), snap.ID, target); err != nil {
		return nil, err
	}

	var n *notification.Notification
	var event string

	switch target {
	case booking.StatusConfirmed:
		n = notification.BookingConfirmed(snap.CustomerID, snap.ID)
		event = events.BookingConfirmed
	case booking.StatusCancelled:
		if snap.TripDateID != nil {
			if err := tx.TripDates().ReleaseSeats(ctx, tx.DB(), *snap.TripDateID, snap.Guests); err != nil {
				return nil, err
			}
		}
		n = notification.BookingCancelled(snap.CustomerID, snap.ID)
		event = events.BookingCancelled
	case booking.StatusCompleted:
		n = notification.RateTrip(snap.CustomerID, snap.ID)
		event = events.BookingCompleted
	}

	if n != nil {
		if _, err := u.dispatcher.Dispatch(ctx, tx, n); err != nil {
			return nil, err
		}
	}

	outcome := &transitionOutcome{
		event:      event,
		bookingID:  snap.ID,
		customerID: snap.CustomerID,
		listingID:  snap.ListingID,
	}
	return outcome, nil
}

func (u *bookingUseCaseImpl) publishOutcome(ctx context.Context, outcome *transitionOutcome) {
	if outcome == nil || outcome.event == "" {
		return
	}
	u.publish(ctx, outcome.event, outcome.bookingID, outcome.customerID, outcome.listingID)
}

func (u *bookingUseCaseImpl) publish(ctx context.Context, eventType string, bookingID, customerID, listingID uuid.UUID) {
	u.publisher.Publish(ctx, events.BookingEvent{
		Type:       eventType,
		BookingID:  bookingID,
		CustomerID: customerID,
		ListingID:  listingID,
		OccurredAt: u.clock.Now(),
	})
}

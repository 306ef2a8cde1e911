package commands

import (
	"context"
	"log/slog"

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
	ErrNoPaymentOnBooking = errs.New("booking has no payment")
	ErrBookingNotPaid     = errs.New("booking is not paid")
	ErrInvalidWebhook     = errs.New("invalid webhook")
)

type PaymentCommands interface {
	CreateIntent(ctx context.Context, bookingID, customerID uuid.UUID) (*shared.PaymentIntent, error)
	GetIntent(ctx context.Context, bookingID, customerID uuid.UUID) (*shared.PaymentIntent, error)
	Refund(ctx context.Context, bookingID uuid.UUID) (*shared.RefundResult, error)
	// HandleWebhook verifies and applies one provider event. It is safe to
	// call with the same event any number of times.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentUseCaseImpl struct {
	uow            shared.UnitOfWork
	gateway        shared.PaymentGateway
	bookingQueries queries.BookingQueries
	dispatcher     *notify.Dispatcher
	publisher      events.Publisher
	clock          clock.Clock
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	bookingQueries queries.BookingQueries,
	dispatcher *notify.Dispatcher,
	publisher events.Publisher,
	clock clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:            uow,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		dispatcher:     dispatcher,
		publisher:      publisher,
		clock:          clock,
	}
}

// CreateIntent opens a payment for the booking's full total. Owner scoped.
func (u *paymentUseCaseImpl) CreateIntent(ctx context.Context, bookingID, customerID uuid.UUID) (*shared.PaymentIntent, error) {
	view, err := u.ownedBooking(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}

	intent, err := u.gateway.CreateIntent(ctx, shared.CreateIntentParams{
		BookingID:   view.ID.String(),
		CustomerID:  view.CustomerID.String(),
		AmountCents: toCents(view.TotalPrice),
		Currency:    view.Currency,
	})
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().SetPaymentIntent(ctx, tx.DB(), bookingID, intent.ID)
	})
	if err != nil {
		return nil, err
	}
	return intent, nil
}

func (u *paymentUseCaseImpl) GetIntent(ctx context.Context, bookingID, customerID uuid.UUID) (*shared.PaymentIntent, error) {
	view, err := u.ownedBooking(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if view.PaymentID == nil {
		return nil, ErrNoPaymentOnBooking
	}
	return u.gateway.GetIntent(ctx, *view.PaymentID)
}

// Refund refunds a paid booking in full and marks it REFUNDED. Admin only;
// the handler enforces the role.
func (u *paymentUseCaseImpl) Refund(ctx context.Context, bookingID uuid.UUID) (*shared.RefundResult, error) {
	view, err := u.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.PaymentID == nil {
		return nil, ErrNoPaymentOnBooking
	}
	if view.PaymentStatus != booking.PaymentPaid.String() {
		return nil, ErrBookingNotPaid
	}

	result, err := u.gateway.Refund(ctx, *view.PaymentID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().SetPaymentStatus(ctx, tx.DB(), bookingID, booking.PaymentRefunded, nil)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *paymentUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := u.gateway.VerifyEvent(payload, signature)
	if err != nil {
		return errs.Mark(err, ErrInvalidWebhook)
	}

	switch event.Type {
	case shared.PaymentEventSucceeded:
		return u.applyPaymentSucceeded(ctx, event)
	case shared.PaymentEventFailed:
		slog.Warn("payment failed",
			"intent_id", event.IntentID,
			"booking_id", event.BookingID,
			"reason", event.FailureMessage)
		return nil
	case shared.PaymentEventRefunded:
		return u.applyChargeRefunded(ctx, event)
	default:
		slog.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}
}

// applyPaymentSucceeded marks the booking PAID, confirms it, and files the
// confirmation notification. Every step tolerates redelivery: the payment and
// status transitions are idempotent and the notification dedups on the
// ledger.
func (u *paymentUseCaseImpl) applyPaymentSucceeded(ctx context.Context, event *shared.PaymentEvent) error {
	bookingID, err := uuid.Parse(event.BookingID)
	if err != nil {
		slog.Warn("webhook payment intent has no booking reference", "intent_id", event.IntentID)
		return nil
	}

	var confirmed *transitionOutcome
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().FindStateForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}

		if snap.PaymentStatus.CanTransitionTo(booking.PaymentPaid) {
			if snap.PaymentStatus != booking.PaymentPaid {
				if err := tx.Bookings().SetPaymentStatus(ctx, tx.DB(), bookingID, booking.PaymentPaid, &event.IntentID); err != nil {
					return err
				}
			}
		} else {
			slog.Warn("payment succeeded for a booking that cannot become PAID",
				"booking_id", bookingID,
				"payment_status", snap.PaymentStatus.String())
		}

		if snap.Status == booking.StatusPending {
			if err := tx.Bookings().SetStatus(ctx, tx.DB(), bookingID, booking.StatusConfirmed); err != nil {
				return err
			}
			confirmed = &transitionOutcome{
				event:      events.BookingConfirmed,
				bookingID:  snap.ID,
				customerID: snap.CustomerID,
				listingID:  snap.ListingID,
			}
		}

		_, err = u.dispatcher.Dispatch(ctx, tx, notification.BookingConfirmed(snap.CustomerID, snap.ID))
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("webhook references unknown booking", "booking_id", bookingID)
			return nil
		}
		return err
	}

	if confirmed != nil {
		u.publisher.Publish(ctx, events.BookingEvent{
			Type:       confirmed.event,
			BookingID:  confirmed.bookingID,
			CustomerID: confirmed.customerID,
			ListingID:  confirmed.listingID,
			OccurredAt: u.clock.Now(),
		})
	}
	return nil
}

func (u *paymentUseCaseImpl) applyChargeRefunded(ctx context.Context, event *shared.PaymentEvent) error {
	if event.IntentID == "" {
		slog.Warn("refund event without payment intent", "event_id", event.ID)
		return nil
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, err := tx.Bookings().SetPaymentStatusByIntent(ctx, tx.DB(), event.IntentID, booking.PaymentRefunded)
		if err != nil {
			return err
		}
		if bookingID == nil {
			slog.Warn("refund event references unknown payment intent", "intent_id", event.IntentID)
			return nil
		}
		slog.Info("booking refunded via webhook", "booking_id", *bookingID, "intent_id", event.IntentID)
		return nil
	})
}

func (u *paymentUseCaseImpl) ownedBooking(ctx context.Context, bookingID, customerID uuid.UUID) (*queries.BookingView, error) {
	view, err := u.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.CustomerID != customerID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

package repository

import (
	"context"

	"wayfare/internal/domain/booking"
	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/pkg/pgconv"
	"wayfare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepository is the write side. Methods take a DBTX so callers decide
// the transaction boundary.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBooking = `
INSERT INTO bookings (
    id, customer_id, listing_id, trip_date_id, check_in_date, check_out_date,
    number_of_guests, total_price, currency, status, payment_status, special_requests
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12)
RETURNING id
`

// Create inserts a booking. An overlap with another date-holding booking
// trips the bookings_no_overlap constraint and surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBooking,
		b.ID, b.CustomerID, b.ListingID,
		pgconv.UUIDPtrToPgtype(b.TripDateID),
		pgconv.TimePtrToPgtype(b.CheckInDate),
		pgconv.TimePtrToPgtype(b.CheckOutDate),
		b.Guests, b.TotalPrice.StringFixed(2), b.Currency,
		b.Status.String(), b.PaymentStatus.String(),
		pgconv.StringPtrToPgtype(b.SpecialRequests),
	).Scan(&id)
	if err != nil {
		if pgconv.IsExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking dates conflict", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// FindStateForUpdate loads the status pair under FOR UPDATE so a transition
// check and its write happen against a stable row.
func (r *BookingRepository) FindStateForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		state      shared.BookingSnapshot
		tripDateID pgtype.UUID
		paymentID  pgtype.Text
	)
	err := tx.QueryRow(ctx,
		`SELECT id, customer_id, listing_id, trip_date_id, number_of_guests, status, payment_status, payment_id
		 FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&state.ID, &state.CustomerID, &state.ListingID, &tripDateID, &state.Guests, &state.Status, &state.PaymentStatus, &paymentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	state.TripDateID = pgconv.UUIDPtrFromPgtype(tripDateID)
	state.PaymentID = pgconv.StringPtrFromPgtype(paymentID)
	return &state, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetPaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus, paymentID *string) error {
	tag, err := tx.Exec(ctx, `
UPDATE bookings
SET payment_status = $2,
    payment_id = COALESCE($3, payment_id),
    updated_at = now()
WHERE id = $1
`, id, status.String(), pgconv.StringPtrToPgtype(paymentID))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetPaymentIntent stores the provider intent id without touching either
// status axis.
func (r *BookingRepository) SetPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, intentID string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET payment_id = $2, updated_at = now() WHERE id = $1`,
		id, intentID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to store payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetPaymentStatusByIntent drives paymentStatus from provider events that
// only carry the intent id (charge.refunded). Returns the booking id when a
// row matched.
func (r *BookingRepository) SetPaymentStatusByIntent(ctx context.Context, tx db.DBTX, intentID string, status booking.PaymentStatus) (*uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
UPDATE bookings
SET payment_status = $2, updated_at = now()
WHERE payment_id = $1
RETURNING id
`, intentID, status.String()).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to update payment status by intent", err)
	}
	return &id, nil
}

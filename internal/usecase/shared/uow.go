package shared

import (
	"context"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/notification"
	"wayfare/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	TripDates() TripDateRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

// BookingSnapshot carries the fields a command needs to decide a transition,
// read under row lock.
type BookingSnapshot struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	ListingID     uuid.UUID
	TripDateID    *uuid.UUID
	Guests        int32
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	PaymentID     *string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindStateForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	SetPaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus, paymentID *string) error
	SetPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, intentID string) error
	SetPaymentStatusByIntent(ctx context.Context, tx db.DBTX, intentID string, status booking.PaymentStatus) (*uuid.UUID, error)
}

type TripDateRepository interface {
	ReserveSeats(ctx context.Context, tx db.DBTX, id uuid.UUID, seats int32) (bool, error)
	ReleaseSeats(ctx context.Context, tx db.DBTX, id uuid.UUID, seats int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error)
	Exists(ctx context.Context, tx db.DBTX, nType notification.Type, referenceID uuid.UUID) (bool, error)
}

package booking

import (
	"time"

	"wayfare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGuestCountTooLow = errs.New("number of guests must be at least 1")
	ErrMissingDates     = errs.New("either a trip date or a stay range is required")
)

// Booking is a customer's reservation against a listing. The total price is
// fixed at creation time and never recomputed.
type Booking struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	ListingID       uuid.UUID
	TripDateID      *uuid.UUID
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	Guests          int32
	TotalPrice      decimal.Decimal
	Currency        string
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentID       *string
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewBookingParams struct {
	CustomerID      uuid.UUID
	ListingID       uuid.UUID
	TripDateID      *uuid.UUID
	Stay            *Stay
	Guests          int32
	TotalPrice      decimal.Decimal
	Currency        string
	SpecialRequests *string
}

// New builds a PENDING/PENDING booking. The caller is expected to have quoted
// the total price already; it is persisted exactly as supplied.
func New(p NewBookingParams) (*Booking, error) {
	if p.Guests < 1 {
		return nil, ErrGuestCountTooLow
	}
	if p.TripDateID == nil && p.Stay == nil {
		return nil, ErrMissingDates
	}

	b := &Booking{
		ID:              uuid.New(),
		CustomerID:      p.CustomerID,
		ListingID:       p.ListingID,
		TripDateID:      p.TripDateID,
		Guests:          p.Guests,
		TotalPrice:      p.TotalPrice,
		Currency:        p.Currency,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		SpecialRequests: p.SpecialRequests,
	}
	if p.Stay != nil {
		in := p.Stay.CheckIn
		out := p.Stay.CheckOut
		b.CheckInDate = &in
		b.CheckOutDate = &out
	}
	return b, nil
}

// Stay returns the flexible-date range when both dates are set.
func (b *Booking) Stay() (Stay, bool) {
	if b.CheckInDate == nil || b.CheckOutDate == nil {
		return Stay{}, false
	}
	return Stay{CheckIn: *b.CheckInDate, CheckOut: *b.CheckOutDate}, true
}

// HoldsDates reports whether the booking blocks its listing's calendar.
func (b *Booking) HoldsDates() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTOs for the read side)
type BookingView struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customerId"`
	ListingID       uuid.UUID       `json:"listingId"`
	TripDateID      *uuid.UUID      `json:"tripDateId,omitempty"`
	CheckInDate     *time.Time      `json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time      `json:"checkOutDate,omitempty"`
	Guests          int32           `json:"numberOfGuests"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentID       *string         `json:"paymentId,omitempty"`
	SpecialRequests *string         `json:"specialRequests,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type TripDateView struct {
	ID              uuid.UUID  `json:"id"`
	ListingID       uuid.UUID  `json:"listingId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	MaxCapacity     *int32     `json:"maxCapacity,omitempty"`
	CurrentBookings int32      `json:"currentBookings"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Page is 1-based; zero values fall back to the defaults.
type Page struct {
	Number int32
	Size   int32
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p Page) Limit() int32 {
	return p.Size
}

func (p Page) Offset() int32 {
	return (p.Number - 1) * p.Size
}

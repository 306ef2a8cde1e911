package request

import (
	"time"

	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckAvailabilityRequest struct {
	ListingID      uuid.UUID  `json:"listingId" binding:"required"`
	TripDateID     *uuid.UUID `json:"tripDateId"`
	CheckInDate    *time.Time `json:"checkInDate"`
	CheckOutDate   *time.Time `json:"checkOutDate"`
	NumberOfGuests int32      `json:"numberOfGuests" binding:"required,min=1"`
}

func (r CheckAvailabilityRequest) ToCheckParams() queries.CheckParams {
	return queries.CheckParams{
		ListingID:  r.ListingID,
		TripDateID: r.TripDateID,
		CheckIn:    r.CheckInDate,
		CheckOut:   r.CheckOutDate,
		Guests:     r.NumberOfGuests,
	}
}

type CreateBookingRequest struct {
	ListingID       uuid.UUID       `json:"listingId" binding:"required"`
	TripDateID      *uuid.UUID      `json:"tripDateId"`
	CheckInDate     *time.Time      `json:"checkInDate"`
	CheckOutDate    *time.Time      `json:"checkOutDate"`
	NumberOfGuests  int32           `json:"numberOfGuests" binding:"required,min=1"`
	TotalPrice      decimal.Decimal `json:"totalPrice" binding:"required"`
	SpecialRequests *string         `json:"specialRequests"`
}

func (r CreateBookingRequest) ToCommand(customerID uuid.UUID) commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		CustomerID:      customerID,
		ListingID:       r.ListingID,
		TripDateID:      r.TripDateID,
		CheckIn:         r.CheckInDate,
		CheckOut:        r.CheckOutDate,
		Guests:          r.NumberOfGuests,
		TotalPrice:      r.TotalPrice,
		SpecialRequests: r.SpecialRequests,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

package response

import (
	"wayfare/internal/domain/pricing"
	"wayfare/internal/usecase/queries"
)

// The read models already carry API-shaped JSON tags, so responses reuse them
// directly instead of re-mapping field by field.

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Reason    string         `json:"reason,omitempty"`
	Quote     *pricing.Quote `json:"quote,omitempty"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
	Page     int32                  `json:"page"`
	Size     int32                  `json:"size"`
}

func NewBookingList(views []*queries.BookingView, page queries.Page) BookingListResponse {
	return BookingListResponse{
		Bookings: views,
		Page:     page.Number,
		Size:     page.Size,
	}
}

package booking

import (
	"time"

	"wayfare/internal/pkg/errs"
)

var ErrInvalidStay = errs.New("check-out date must be after check-in date")

// Stay is a customer-chosen date range for flexible-date bookings.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkIn.Before(checkOut) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Nights is floor((checkOut-checkIn)/24h) clamped to a minimum of 1.
func (s Stay) Nights() int32 {
	nights := int32(s.CheckOut.Sub(s.CheckIn) / (24 * time.Hour))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Overlaps uses the inclusive test mirrored by the bookings_no_overlap
// exclusion constraint: two ranges overlap when each range's start is not
// after the other's end.
func (s Stay) Overlaps(other Stay) bool {
	return !s.CheckIn.After(other.CheckOut) && !other.CheckIn.After(s.CheckOut)
}

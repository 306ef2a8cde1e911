// Package pricing computes booking quotes. All arithmetic is decimal so
// cent-level drift cannot creep in; guest and night factors are exact integer
// scalars.
package pricing

import (
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/listing"

	"github.com/shopspring/decimal"
)

var (
	taxRate        = decimal.RequireFromString("0.10")
	serviceFeeRate = decimal.RequireFromString("0.05")
)

const moneyScale = 2

type Quote struct {
	BasePrice  decimal.Decimal `json:"basePrice"`
	Tax        decimal.Decimal `json:"tax"`
	ServiceFee decimal.Decimal `json:"serviceFee"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	Nights     int32           `json:"nights"`
	Guests     int32           `json:"numberOfGuests"`
}

// Calculate quotes a listing for the given guests and optional stay range.
// Hotels price per night; every other category prices per booking. Tax is 10%
// and the service fee 5% of the guest/night-adjusted subtotal.
func Calculate(l *listing.Snapshot, checkIn, checkOut *time.Time, guests int32) Quote {
	nights := int32(1)
	subtotal := l.Price.Mul(decimal.NewFromInt32(guests))

	if checkIn != nil && checkOut != nil {
		stay := booking.Stay{CheckIn: *checkIn, CheckOut: *checkOut}
		nights = stay.Nights()
		if l.Category.PricedPerNight() {
			subtotal = l.Price.
				Mul(decimal.NewFromInt32(nights)).
				Mul(decimal.NewFromInt32(guests))
		}
	}

	tax := subtotal.Mul(taxRate).Round(moneyScale)
	fee := subtotal.Mul(serviceFeeRate).Round(moneyScale)

	return Quote{
		BasePrice:  subtotal.Round(moneyScale),
		Tax:        tax,
		ServiceFee: fee,
		Total:      subtotal.Add(tax).Add(fee).Round(moneyScale),
		Currency:   l.Currency,
		Nights:     nights,
		Guests:     guests,
	}
}

package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCategory = errors.New("invalid listing category")

type Category string

const (
	CategoryHotel    Category = "HOTEL"
	CategoryFlight   Category = "FLIGHT"
	CategoryActivity Category = "ACTIVITY"
	CategoryPackage  Category = "PACKAGE"
)

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(s))
	switch c {
	case CategoryHotel, CategoryFlight, CategoryActivity, CategoryPackage:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string {
	return string(c)
}

// PricedPerNight reports whether the unit price multiplies by nights when a
// stay range is present.
func (c Category) PricedPerNight() bool {
	return c == CategoryHotel
}

// Snapshot is the read-only view of a listing the booking core consumes.
// Listing CRUD is owned by the vendor-facing service.
type Snapshot struct {
	ID            uuid.UUID       `json:"id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	Title         string          `json:"title"`
	Category      Category        `json:"category"`
	Location      string          `json:"location"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Capacity      *int32          `json:"capacity,omitempty"`
	AvailableFrom *time.Time      `json:"available_from,omitempty"`
	AvailableTo   *time.Time      `json:"available_to,omitempty"`
	Active        bool            `json:"active"`
}

// FitsGuests reports whether the guest count is within capacity. A listing
// without capacity accepts any count.
func (s *Snapshot) FitsGuests(guests int32) bool {
	return s.Capacity == nil || guests <= *s.Capacity
}

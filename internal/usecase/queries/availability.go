package queries

import (
	"context"
	"fmt"
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/listing"
	"wayfare/internal/domain/pricing"
	"wayfare/internal/infra"
	"wayfare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Snapshot, error)
}

type TripDateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TripDateView, error)
}

type OverlapReadStore interface {
	// CountHolding counts PENDING/CONFIRMED bookings on the listing whose
	// stay overlaps the given one.
	CountHolding(ctx context.Context, listingID uuid.UUID, stay booking.Stay) (int64, error)
}

type CheckParams struct {
	ListingID  uuid.UUID
	TripDateID *uuid.UUID
	CheckIn    *time.Time
	CheckOut   *time.Time
	Guests     int32
}

type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityEngine answers "can this be booked" and "what does it cost".
// It is read-only and reports on state at call time only; the no-double-booking
// guarantee itself comes from the bookings_no_overlap constraint on insert.
type AvailabilityEngine interface {
	Check(ctx context.Context, p CheckParams) (Availability, error)
	Quote(ctx context.Context, p CheckParams) (*pricing.Quote, error)
}

type availabilityEngineImpl struct {
	listings  ListingReadStore
	tripDates TripDateReadStore
	overlaps  OverlapReadStore
}

func NewAvailabilityEngine(listings ListingReadStore, tripDates TripDateReadStore, overlaps OverlapReadStore) AvailabilityEngine {
	return &availabilityEngineImpl{
		listings:  listings,
		tripDates: tripDates,
		overlaps:  overlaps,
	}
}

func unavailable(reason string) Availability {
	return Availability{Available: false, Reason: reason}
}

// Check validates in order and returns the first failing reason.
func (e *availabilityEngineImpl) Check(ctx context.Context, p CheckParams) (Availability, error) {
	l, err := e.listings.FindByID(ctx, p.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return unavailable("listing not found"), nil
		}
		return Availability{}, err
	}

	if !l.Active {
		return unavailable("listing is not active"), nil
	}

	if !l.FitsGuests(p.Guests) {
		return unavailable(fmt.Sprintf("number of guests exceeds capacity (max: %d)", *l.Capacity)), nil
	}

	if p.TripDateID != nil {
		return e.checkTripDate(ctx, l, *p.TripDateID, p.Guests)
	}

	if p.CheckIn != nil && p.CheckOut != nil {
		return e.checkStay(ctx, l, *p.CheckIn, *p.CheckOut)
	}

	return Availability{Available: true}, nil
}

func (e *availabilityEngineImpl) checkTripDate(ctx context.Context, l *listing.Snapshot, tripDateID uuid.UUID, guests int32) (Availability, error) {
	td, err := e.tripDates.FindByID(ctx, tripDateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return unavailable("trip date not found"), nil
		}
		return Availability{}, err
	}

	if td.ListingID != l.ID {
		return unavailable("trip date does not belong to this listing"), nil
	}
	if !td.Active {
		return unavailable("trip date is not active"), nil
	}

	// The trip date's own capacity overrides the listing's.
	capacity := l.Capacity
	if td.MaxCapacity != nil {
		capacity = td.MaxCapacity
	}
	if capacity != nil {
		remaining := *capacity - td.CurrentBookings
		if guests > remaining {
			return unavailable(fmt.Sprintf("trip date does not have enough seats left (remaining: %d)", remaining)), nil
		}
	}

	return Availability{Available: true}, nil
}

func (e *availabilityEngineImpl) checkStay(ctx context.Context, l *listing.Snapshot, checkIn, checkOut time.Time) (Availability, error) {
	if l.AvailableFrom != nil && checkIn.Before(*l.AvailableFrom) {
		return unavailable("check-in date is before listing availability start"), nil
	}
	if l.AvailableTo != nil && checkOut.After(*l.AvailableTo) {
		return unavailable("check-out date is after listing availability end"), nil
	}

	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return unavailable("check-out date must be after check-in date"), nil
	}

	conflicts, err := e.overlaps.CountHolding(ctx, l.ID, stay)
	if err != nil {
		return Availability{}, err
	}
	if conflicts > 0 {
		return unavailable("selected dates are not available (conflicting bookings)"), nil
	}

	return Availability{Available: true}, nil
}

func (e *availabilityEngineImpl) Quote(ctx context.Context, p CheckParams) (*pricing.Quote, error) {
	l, err := e.listings.FindByID(ctx, p.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	checkIn, checkOut := p.CheckIn, p.CheckOut
	if p.TripDateID != nil && checkIn == nil && checkOut == nil {
		// Predefined departures quote against the trip window.
		td, err := e.tripDates.FindByID(ctx, *p.TripDateID)
		if err != nil {
			return nil, err
		}
		if td.ListingID == l.ID {
			checkIn, checkOut = &td.StartDate, &td.EndDate
		}
	}

	quote := pricing.Calculate(l, checkIn, checkOut, p.Guests)
	return &quote, nil
}

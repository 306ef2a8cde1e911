package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBookingConfirmed Type = "BOOKING_CONFIRMED"
	TypeBookingCancelled Type = "BOOKING_CANCELLED"
	TypeTripReminder     Type = "TRIP_REMINDER"
	TypeRateTrip         Type = "RATE_TRIP"
)

func (t Type) String() string {
	return string(t)
}

type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	Title       string
	Message     string
	ReferenceID *uuid.UUID
	Read        bool
	CreatedAt   time.Time
}

// BookingConfirmed and friends build the canonical message for each type.
// The short booking id keeps the copy readable.

func BookingConfirmed(userID, bookingID uuid.UUID) *Notification {
	return build(userID, bookingID, TypeBookingConfirmed,
		"Booking Confirmed",
		fmt.Sprintf("Your booking #%.8s has been confirmed.", bookingID.String()))
}

func BookingCancelled(userID, bookingID uuid.UUID) *Notification {
	return build(userID, bookingID, TypeBookingCancelled,
		"Booking Cancelled",
		fmt.Sprintf("Your booking #%.8s has been cancelled.", bookingID.String()))
}

func TripReminder(userID, bookingID uuid.UUID) *Notification {
	return build(userID, bookingID, TypeTripReminder,
		"Trip Reminder",
		fmt.Sprintf("Your trip is starting soon! Booking #%.8s.", bookingID.String()))
}

func RateTrip(userID, bookingID uuid.UUID) *Notification {
	return build(userID, bookingID, TypeRateTrip,
		"Rate Your Trip",
		fmt.Sprintf("How was your experience? Leave a review for booking #%.8s.", bookingID.String()))
}

func build(userID, bookingID uuid.UUID, t Type, title, message string) *Notification {
	ref := bookingID
	return &Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        t,
		Title:       title,
		Message:     message,
		ReferenceID: &ref,
	}
}

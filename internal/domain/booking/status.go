package booking

import (
	"strings"

	"wayfare/internal/pkg/errs"
)

var (
	ErrInvalidStatus        = errs.New("invalid booking status")
	ErrInvalidPaymentStatus = errs.New("invalid payment status")
	ErrInvalidTransition    = errs.New("invalid status transition")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus rejects unknown values instead of silently ignoring them.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(s))
	switch st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo enforces the booking state machine. Re-applying the current
// status is a permitted no-op so webhook redelivery stays safe.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(strings.ToUpper(s))
	switch ps {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return ps, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo: PENDING -> PAID -> REFUNDED, each step also idempotent.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PaymentPending:
		return next == PaymentPaid
	case PaymentPaid:
		return next == PaymentRefunded
	default:
		return false
	}
}

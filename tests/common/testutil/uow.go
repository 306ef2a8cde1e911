package testutil

import (
	"context"

	"wayfare/internal/infra/db"
	"wayfare/internal/usecase/shared"
)

// FakeTx hands the configured repositories to code under test. The DBTX is
// nil; repository mocks never touch it.
type FakeTx struct {
	BookingsRepo      shared.BookingRepository
	TripDatesRepo     shared.TripDateRepository
	NotificationsRepo shared.NotificationRepository
}

func (t *FakeTx) Bookings() shared.BookingRepository           { return t.BookingsRepo }
func (t *FakeTx) TripDates() shared.TripDateRepository         { return t.TripDatesRepo }
func (t *FakeTx) Notifications() shared.NotificationRepository { return t.NotificationsRepo }
func (t *FakeTx) DB() db.DBTX                                  { return nil }

// FakeUoW runs the function directly; there is no real transaction, so a
// returned error simply propagates as a rollback would.
type FakeUoW struct {
	Tx *FakeTx
}

func NewFakeUoW(tx *FakeTx) *FakeUoW {
	return &FakeUoW{Tx: tx}
}

func (u *FakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

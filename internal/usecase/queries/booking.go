package queries

import (
	"context"

	"wayfare/internal/infra"
	"wayfare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*BookingView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, limit, offset int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*BookingView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, page Page) ([]*BookingView, error) {
	page = page.Normalize()
	return q.store.ListByCustomer(ctx, customerID, page.Limit(), page.Offset())
}

func (q *bookingQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID, page Page) ([]*BookingView, error) {
	page = page.Normalize()
	return q.store.ListByListing(ctx, listingID, page.Limit(), page.Offset())
}

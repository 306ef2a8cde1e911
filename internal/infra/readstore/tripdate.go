package readstore

import (
	"context"

	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/pkg/pgconv"
	"wayfare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TripDateReadStore struct {
	db db.DBTX
}

func NewTripDateReadStore(dbtx db.DBTX) *TripDateReadStore {
	return &TripDateReadStore{db: dbtx}
}

const findTripDateByID = `
SELECT id, listing_id, start_date, end_date, max_capacity, current_bookings,
       is_active, created_at, updated_at
FROM trip_dates
WHERE id = $1
`

func (r *TripDateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TripDateView, error) {
	var (
		view        queries.TripDateView
		maxCapacity pgtype.Int4
	)

	err := r.db.QueryRow(ctx, findTripDateByID, id).Scan(
		&view.ID, &view.ListingID, &view.StartDate, &view.EndDate,
		&maxCapacity, &view.CurrentBookings, &view.Active,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trip date not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trip date by ID", err)
	}

	view.MaxCapacity = pgconv.Int32PtrFromPgtype(maxCapacity)
	return &view, nil
}

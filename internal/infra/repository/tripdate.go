package repository

import (
	"context"

	"wayfare/internal/infra"
	"wayfare/internal/infra/db"

	"github.com/google/uuid"
)

type TripDateRepository struct {
	db db.DBTX
}

func NewTripDateRepository(dbtx db.DBTX) *TripDateRepository {
	return &TripDateRepository{db: dbtx}
}

// ReserveSeats atomically claims seats on an active trip date. The guard in
// the WHERE clause is what makes two concurrent claims on the last seats
// mutually exclusive; a false return means the trip date is gone, inactive,
// or out of capacity.
func (r *TripDateRepository) ReserveSeats(ctx context.Context, tx db.DBTX, id uuid.UUID, seats int32) (bool, error) {
	tag, err := tx.Exec(ctx, `
UPDATE trip_dates
SET current_bookings = current_bookings + $2, updated_at = now()
WHERE id = $1
  AND is_active
  AND (max_capacity IS NULL OR current_bookings + $2 <= max_capacity)
`, id, seats)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve trip date seats", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseSeats returns seats claimed by a cancelled booking.
func (r *TripDateRepository) ReleaseSeats(ctx context.Context, tx db.DBTX, id uuid.UUID, seats int32) error {
	_, err := tx.Exec(ctx, `
UPDATE trip_dates
SET current_bookings = GREATEST(current_bookings - $2, 0), updated_at = now()
WHERE id = $1
`, id, seats)
	if err != nil {
		return infra.WrapRepoErr("failed to release trip date seats", err)
	}
	return nil
}

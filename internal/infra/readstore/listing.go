package readstore

import (
	"context"

	"wayfare/internal/domain/listing"
	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: dbtx}
}

const findListingByID = `
SELECT id, vendor_id, title, category, location, price::text, currency,
       capacity, available_from, available_to, is_active
FROM listings
WHERE id = $1
`

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*listing.Snapshot, error) {
	var (
		snap      listing.Snapshot
		category  string
		priceText string
		capacity  pgtype.Int4
		from, to  pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findListingByID, id).Scan(
		&snap.ID, &snap.VendorID, &snap.Title, &category, &snap.Location,
		&priceText, &snap.Currency, &capacity, &from, &to, &snap.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	snap.Category = listing.Category(category)
	snap.Price, err = decimal.NewFromString(priceText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing price", err)
	}
	snap.Capacity = pgconv.Int32PtrFromPgtype(capacity)
	snap.AvailableFrom = pgconv.TimePtrFromPgtype(from)
	snap.AvailableTo = pgconv.TimePtrFromPgtype(to)

	return &snap, nil
}

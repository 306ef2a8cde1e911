package readstore

import (
	"context"
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/infra"
	"wayfare/internal/infra/db"
	"wayfare/internal/pkg/pgconv"
	"wayfare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingColumns = `
id, customer_id, listing_id, trip_date_id, check_in_date, check_out_date,
number_of_guests, total_price::text, currency, status, payment_status,
payment_id, special_requests, created_at, updated_at
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) ListByListing(ctx context.Context, listingID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE listing_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		listingID, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by listing", err)
	}
	return collectBookingViews(rows)
}

// CountHolding backs the availability engine's overlap test. Inclusive bounds
// match the bookings_no_overlap exclusion constraint.
func (r *BookingReadStore) CountHolding(ctx context.Context, listingID uuid.UUID, stay booking.Stay) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
SELECT COUNT(*)
FROM bookings
WHERE listing_id = $1
  AND status IN ('PENDING', 'CONFIRMED')
  AND check_in_date IS NOT NULL AND check_out_date IS NOT NULL
  AND tstzrange(check_in_date, check_out_date, '[]') && tstzrange($2, $3, '[]')
`, listingID, stay.CheckIn, stay.CheckOut).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

// DueForCompletion selects CONFIRMED bookings whose effective end (direct
// check-out, or the linked trip date's end) has passed.
func (r *BookingReadStore) DueForCompletion(ctx context.Context, now time.Time, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+prefixedBookingColumns("b")+`
FROM bookings b
LEFT JOIN trip_dates td ON td.id = b.trip_date_id
WHERE b.status = 'CONFIRMED'
  AND COALESCE(b.check_out_date, td.end_date) < $1
ORDER BY b.created_at
LIMIT $2
`, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select bookings due for completion", err)
	}
	return collectBookingViews(rows)
}

// DueForReminder selects CONFIRMED trip-date bookings starting within
// (now, now+window].
func (r *BookingReadStore) DueForReminder(ctx context.Context, now time.Time, window time.Duration, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+prefixedBookingColumns("b")+`
FROM bookings b
JOIN trip_dates td ON td.id = b.trip_date_id
WHERE b.status = 'CONFIRMED'
  AND td.start_date > $1
  AND td.start_date <= $2
ORDER BY td.start_date
LIMIT $3
`, now, now.Add(window), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select bookings due for reminder", err)
	}
	return collectBookingViews(rows)
}

func prefixedBookingColumns(alias string) string {
	return alias + `.id, ` + alias + `.customer_id, ` + alias + `.listing_id, ` +
		alias + `.trip_date_id, ` + alias + `.check_in_date, ` + alias + `.check_out_date, ` +
		alias + `.number_of_guests, ` + alias + `.total_price::text, ` + alias + `.currency, ` +
		alias + `.status, ` + alias + `.payment_status, ` + alias + `.payment_id, ` +
		alias + `.special_requests, ` + alias + `.created_at, ` + alias + `.updated_at`
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		tripDateID      pgtype.UUID
		checkIn         pgtype.Timestamptz
		checkOut        pgtype.Timestamptz
		totalPriceText  string
		paymentID       pgtype.Text
		specialRequests pgtype.Text
	)

	err := row.Scan(
		&view.ID, &view.CustomerID, &view.ListingID, &tripDateID,
		&checkIn, &checkOut, &view.Guests, &totalPriceText, &view.Currency,
		&view.Status, &view.PaymentStatus, &paymentID, &specialRequests,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.TotalPrice, err = decimal.NewFromString(totalPriceText)
	if err != nil {
		return nil, err
	}
	view.TripDateID = pgconv.UUIDPtrFromPgtype(tripDateID)
	view.CheckInDate = pgconv.TimePtrFromPgtype(checkIn)
	view.CheckOutDate = pgconv.TimePtrFromPgtype(checkOut)
	view.PaymentID = pgconv.StringPtrFromPgtype(paymentID)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)

	return &view, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

package builder

import (
	"time"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/listing"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/queries"
	"wayfare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingBuilder produces consistent booking fixtures. Defaults describe a
// two-night hotel stay for two guests.
type BookingBuilder struct {
	id         uuid.UUID
	customerID uuid.UUID
	listingID  uuid.UUID
	tripDateID *uuid.UUID
	checkIn    *time.Time
	checkOut   *time.Time
	guests     int32
	totalPrice decimal.Decimal
	currency   string
	status     booking.Status
	payStatus  booking.PaymentStatus
	paymentID  *string
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)
	return &BookingBuilder{
		id:         uuid.New(),
		customerID: uuid.New(),
		listingID:  uuid.New(),
		checkIn:    &checkIn,
		checkOut:   &checkOut,
		guests:     2,
		totalPrice: decimal.NewFromInt(460),
		currency:   "USD",
		status:     booking.StatusPending,
		payStatus:  booking.PaymentPending,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithCustomer(id uuid.UUID) *BookingBuilder {
	b.customerID = id
	return b
}

func (b *BookingBuilder) WithListing(id uuid.UUID) *BookingBuilder {
	b.listingID = id
	return b
}

// WithTripDate switches the fixture to a predefined-departure booking.
func (b *BookingBuilder) WithTripDate(id uuid.UUID) *BookingBuilder {
	b.tripDateID = &id
	b.checkIn = nil
	b.checkOut = nil
	return b
}

func (b *BookingBuilder) WithGuests(n int32) *BookingBuilder {
	b.guests = n
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.status = s
	return b
}

func (b *BookingBuilder) WithPaymentStatus(s booking.PaymentStatus) *BookingBuilder {
	b.payStatus = s
	return b
}

func (b *BookingBuilder) WithPaymentID(id string) *BookingBuilder {
	b.paymentID = &id
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:            b.id,
		CustomerID:    b.customerID,
		ListingID:     b.listingID,
		TripDateID:    b.tripDateID,
		CheckInDate:   b.checkIn,
		CheckOutDate:  b.checkOut,
		Guests:        b.guests,
		TotalPrice:    b.totalPrice,
		Currency:      b.currency,
		Status:        b.status.String(),
		PaymentStatus: b.payStatus.String(),
		PaymentID:     b.paymentID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.id,
		CustomerID:    b.customerID,
		ListingID:     b.listingID,
		TripDateID:    b.tripDateID,
		Guests:        b.guests,
		Status:        b.status,
		PaymentStatus: b.payStatus,
		PaymentID:     b.paymentID,
	}
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		CustomerID: b.customerID,
		ListingID:  b.listingID,
		TripDateID: b.tripDateID,
		CheckIn:    b.checkIn,
		CheckOut:   b.checkOut,
		Guests:     b.guests,
		TotalPrice: b.totalPrice,
	}
}

// ListingBuilder produces listing snapshots to pair with booking fixtures.
type ListingBuilder struct {
	id       uuid.UUID
	category listing.Category
	price    decimal.Decimal
	capacity *int32
	from, to *time.Time
	active   bool
}

func NewListingBuilder() *ListingBuilder {
	capacity := int32(4)
	return &ListingBuilder{
		id:       uuid.New(),
		category: listing.CategoryHotel,
		price:    decimal.NewFromInt(100),
		capacity: &capacity,
		active:   true,
	}
}

func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.id = id
	return l
}

func (l *ListingBuilder) WithCategory(c listing.Category) *ListingBuilder {
	l.category = c
	return l
}

func (l *ListingBuilder) WithPrice(p decimal.Decimal) *ListingBuilder {
	l.price = p
	return l
}

func (l *ListingBuilder) WithCapacity(n int32) *ListingBuilder {
	l.capacity = &n
	return l
}

func (l *ListingBuilder) WithoutCapacity() *ListingBuilder {
	l.capacity = nil
	return l
}

func (l *ListingBuilder) WithWindow(from, to time.Time) *ListingBuilder {
	l.from = &from
	l.to = &to
	return l
}

func (l *ListingBuilder) Inactive() *ListingBuilder {
	l.active = false
	return l
}

func (l *ListingBuilder) Build() *listing.Snapshot {
	return &listing.Snapshot{
		ID:            l.id,
		VendorID:      uuid.New(),
		Title:         "Seaside Hotel",
		Category:      l.category,
		Location:      "Lisbon, Portugal",
		Price:         l.price,
		Currency:      "USD",
		Capacity:      l.capacity,
		AvailableFrom: l.from,
		AvailableTo:   l.to,
		Active:        l.active,
	}
}

//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"wayfare/internal/domain/listing"
	"wayfare/internal/domain/pricing"
	"wayfare/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stay(nights int) (time.Time, time.Time) {
	checkIn := time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC)
	return checkIn, checkIn.Add(time.Duration(nights) * 24 * time.Hour)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestCalculate(t *testing.T) {
	t.Run("hotel multiplies nights and guests", func(t *testing.T) {
		l := builder.NewListingBuilder().WithPrice(decimal.NewFromInt(100)).Build()
		checkIn, checkOut := stay(2)

		q := pricing.Calculate(l, &checkIn, &checkOut, 3)

		assertMoney(t, "600", q.BasePrice)
		assertMoney(t, "60", q.Tax)
		assertMoney(t, "30", q.ServiceFee)
		assertMoney(t, "690", q.Total)
		assert.Equal(t, int32(2), q.Nights)
		assert.Equal(t, int32(3), q.Guests)
		assert.Equal(t, "USD", q.Currency)
	})

	t.Run("activity prices per booking regardless of nights", func(t *testing.T) {
		l := builder.NewListingBuilder().
			WithCategory(listing.CategoryActivity).
			WithPrice(decimal.NewFromInt(100)).
			Build()
		checkIn, checkOut := stay(5)

		q := pricing.Calculate(l, &checkIn, &checkOut, 3)

		assertMoney(t, "300", q.BasePrice)
		assertMoney(t, "345", q.Total)
		assert.Equal(t, int32(5), q.Nights)
	})

	t.Run("no dates defaults to one night", func(t *testing.T) {
		l := builder.NewListingBuilder().WithPrice(decimal.NewFromInt(100)).Build()

		q := pricing.Calculate(l, nil, nil, 2)

		assertMoney(t, "200", q.BasePrice)
		assert.Equal(t, int32(1), q.Nights)
	})

	t.Run("fractional prices round to cents", func(t *testing.T) {
		l := builder.NewListingBuilder().
			WithPrice(decimal.RequireFromString("99.99")).
			Build()
		checkIn, checkOut := stay(1)

		q := pricing.Calculate(l, &checkIn, &checkOut, 1)

		assertMoney(t, "99.99", q.BasePrice)
		assertMoney(t, "10.00", q.Tax)
		assertMoney(t, "5.00", q.ServiceFee)
		assertMoney(t, "114.99", q.Total)
	})
}

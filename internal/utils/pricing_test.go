package utils

import (
	"testing"
	"time"

	"ijara-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, ok := ParseDate("2025-08-01")
		assert.True(t, ok)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.August, d.Month())
		assert.Equal(t, 1, d.Day())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, ok := ParseDate("01/08/2025")
		assert.False(t, ok)
	})

	t.Run("Empty string", func(t *testing.T) {
		_, ok := ParseDate("")
		assert.False(t, ok)
	})
}

func TestRentalDays(t *testing.T) {
	t.Run("Three full days", func(t *testing.T) {
		// 2025-08-01 to 2025-08-04 = 3 days
		assert.Equal(t, 3, RentalDays("2025-08-01", "2025-08-04", testNow))
	})

	t.Run("Same day bills one day", func(t *testing.T) {
		assert.Equal(t, 1, RentalDays("2025-08-04", "2025-08-04", testNow))
	})

	t.Run("Open rental billed up to now", func(t *testing.T) {
		// 2025-08-01 to now (2025-08-20) = 19 days
		assert.Equal(t, 19, RentalDays("2025-08-01", "", testNow))
	})

	t.Run("Started today with no return date", func(t *testing.T) {
		assert.Equal(t, 1, RentalDays("2025-08-20", "", testNow))
	})

	t.Run("Invalid start date yields zero", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays("not-a-date", "2025-08-04", testNow))
		assert.Equal(t, 0, RentalDays("", "", testNow))
	})

	t.Run("Invalid end date falls back to now", func(t *testing.T) {
		assert.Equal(t, 19, RentalDays("2025-08-01", "garbage", testNow))
	})

	t.Run("Day count ignores time of day", func(t *testing.T) {
		lateEvening := time.Date(2025, 8, 20, 23, 59, 0, 0, time.FixedZone("UZT", 5*3600))
		assert.Equal(t, 19, RentalDays("2025-08-01", "", lateEvening))
	})
}

func TestAccruedPrice(t *testing.T) {
	t.Run("Daily rate times quantity times days", func(t *testing.T) {
		assert.Equal(t, int64(150000), AccruedPrice(25000, 2, 3))
	})

	t.Run("Zero days costs nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), AccruedPrice(25000, 2, 0))
	})

	t.Run("Missing quantity treated as one unit", func(t *testing.T) {
		assert.Equal(t, int64(75000), AccruedPrice(25000, 0, 3))
	})
}

func TestEffectiveTotal(t *testing.T) {
	t.Run("Active rental is a live projection", func(t *testing.T) {
		r := &domain.Rental{
			StartDate:  "2025-08-01",
			DailyPrice: 10000,
			Quantity:   1,
			Status:     domain.RentalStatusActive,
		}
		// 19 days up to testNow
		assert.Equal(t, int64(190000), EffectiveTotal(r, testNow))

		// A day later the projection has grown.
		later := testNow.AddDate(0, 0, 1)
		assert.Equal(t, int64(200000), EffectiveTotal(r, later))
	})

	t.Run("Frozen total survives recomputation", func(t *testing.T) {
		r := &domain.Rental{
			StartDate:  "2025-08-01",
			ReturnDate: "2025-08-04",
			DailyPrice: 10000,
			Quantity:   1,
			TotalDays:  3,
			TotalPrice: 30000,
			Status:     domain.RentalStatusReturned,
		}
		assert.Equal(t, int64(30000), EffectiveTotal(r, testNow))

		// Much later, the frozen value must come back unchanged.
		muchLater := testNow.AddDate(1, 0, 0)
		assert.Equal(t, int64(30000), EffectiveTotal(r, muchLater))
		assert.Equal(t, 3, EffectiveDays(r, muchLater))
	})

	t.Run("Returned without persisted total recomputes from return date", func(t *testing.T) {
		r := &domain.Rental{
			StartDate:  "2025-08-01",
			ReturnDate: "2025-08-04",
			DailyPrice: 10000,
			Quantity:   2,
			Status:     domain.RentalStatusReturned,
		}
		assert.Equal(t, int64(60000), EffectiveTotal(r, testNow))
	})

	t.Run("Invalid start date yields zero", func(t *testing.T) {
		r := &domain.Rental{DailyPrice: 10000, Quantity: 1, Status: domain.RentalStatusActive}
		assert.Equal(t, int64(0), EffectiveTotal(r, testNow))
		assert.Equal(t, 0, EffectiveDays(r, testNow))
	})
}

package utils

import (
	"time"

	"ijara-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time at
// midnight UTC. The zero time and false are returned for anything that
// does not parse.
func ParseDate(dateStr string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// midnightUTC strips the time component so that day counts are immune to
// timezone and DST drift.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RentalDays returns the billable day count between startDate and endDate.
// An empty endDate means the rental is still out and is billed up to now.
// A rental out for less than a full day still bills one day. An invalid or
// missing start date yields 0 rather than an error.
func RentalDays(startDate, endDate string, now time.Time) int {
	start, ok := ParseDate(startDate)
	if !ok {
		return 0
	}

	end := now
	if endDate != "" {
		if parsed, ok := ParseDate(endDate); ok {
			end = parsed
		}
	}

	days := int(midnightUTC(end).Sub(midnightUTC(start)).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// AccruedPrice is the charge for renting quantity units at dailyPrice for
// the given number of days. A zero-day rental costs nothing; a missing
// quantity is treated as a single unit.
func AccruedPrice(dailyPrice int64, quantity, days int) int64 {
	if days <= 0 {
		return 0
	}
	if quantity < 1 {
		quantity = 1
	}
	return dailyPrice * int64(quantity) * int64(days)
}

// EffectiveTotal returns the amount a rental is worth at the given moment.
// A returned rental's persisted TotalPrice was anchored to the actual
// return date and is authoritative; an active rental is a live projection
// that grows with every passing day.
func EffectiveTotal(r *domain.Rental, now time.Time) int64 {
	if r.Settled() && r.TotalPrice > 0 {
		return r.TotalPrice
	}
	if r.Settled() && r.ReturnDate != "" {
		return AccruedPrice(r.DailyPrice, r.Quantity, RentalDays(r.StartDate, r.ReturnDate, now))
	}
	return AccruedPrice(r.DailyPrice, r.Quantity, RentalDays(r.StartDate, "", now))
}

// EffectiveDays mirrors EffectiveTotal for the day count shown next to it.
func EffectiveDays(r *domain.Rental, now time.Time) int {
	if r.Settled() && r.TotalDays > 0 {
		return r.TotalDays
	}
	if r.Settled() && r.ReturnDate != "" {
		return RentalDays(r.StartDate, r.ReturnDate, now)
	}
	return RentalDays(r.StartDate, "", now)
}

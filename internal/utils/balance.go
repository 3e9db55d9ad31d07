package utils

import (
	"time"

	"ijara-backend/internal/domain"
)

// ClientBalance reduces a client's rentals and payments into the derived
// {total, paid, debt} view. Missing numeric fields count as zero and the
// debt is floored at zero regardless of how payments and rentals line up.
func ClientBalance(rentals []domain.Rental, payments []domain.Payment, now time.Time) domain.Balance {
	var total, paid int64
	for i := range rentals {
		total += EffectiveTotal(&rentals[i], now)
	}
	for _, p := range payments {
		paid += p.Amount
	}
	return domain.Balance{Total: total, Paid: paid, Debt: maxInt64(0, total-paid)}
}

// RentalBalance is the per-rental variant used by the debt sweep: only
// payments explicitly tied to the rental count toward its paid amount.
func RentalBalance(r *domain.Rental, payments []domain.Payment, now time.Time) domain.Balance {
	total := EffectiveTotal(r, now)
	var paid int64
	for _, p := range payments {
		if p.RentalID == r.ID {
			paid += p.Amount
		}
	}
	return domain.Balance{Total: total, Paid: paid, Debt: maxInt64(0, total-paid)}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

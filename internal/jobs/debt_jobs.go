package jobs

import (
	"context"
	"fmt"
	"time"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	"ijara-backend/internal/utils"
)

// SweepOverdueRentals finds rentals past their payment due date that still
// carry an unpaid balance, records a debt for each and sends the client an
// SMS reminder. A rental that already got a debt record within the cooldown
// window is skipped, so a pod restart cannot re-spam clients the same day.
func (jr *JobRunner) SweepOverdueRentals() {
	jr.runWithRecovery("SweepOverdueRentals", func() {
		ctx := context.Background()
		now := jr.now()
		today := now.Format("2006-01-02")

		rentals, err := jr.rentalRepo.ListDueBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		cooldown := time.Duration(jr.config.Scheduler.DebtCooldownHours) * time.Hour

		recorded := 0
		for _, rental := range rentals {
			if rental.Status == domain.RentalStatusPaid {
				continue
			}
			wrote, err := jr.sweepRental(ctx, &rental, now, cooldown)
			if err != nil {
				logger.Error("Failed to sweep rental",
					"rental_id", rental.ID,
					"client_id", rental.ClientID,
					"error", err)
			}
			if wrote {
				recorded++
			}
		}

		logger.Info("Swept overdue rentals",
			"checked", len(rentals),
			"recorded", recorded)
	})
}

// sweepRental reports whether a debt record was actually written, so the
// sweep summary does not count rentals skipped by a zero balance or the
// cooldown window.
func (jr *JobRunner) sweepRental(ctx context.Context, rental *domain.Rental, now time.Time, cooldown time.Duration) (bool, error) {
	payments, err := jr.paymentRepo.ListByRental(ctx, rental.ID)
	if err != nil {
		return false, fmt.Errorf("failed to list payments: %w", err)
	}

	balance := utils.RentalBalance(rental, payments, now)
	if balance.Debt <= 0 {
		return false, nil
	}

	latest, err := jr.debtRepo.LatestByRental(ctx, rental.ID)
	if err != nil && err != repository.ErrNotFound {
		return false, fmt.Errorf("failed to check debt history: %w", err)
	}
	if latest != nil && now.Sub(latest.CreatedAt) < cooldown {
		logger.Debug("Debt recently recorded, skipping",
			"rental_id", rental.ID,
			"last_recorded", latest.CreatedAt)
		return false, nil
	}

	debt := &domain.Debt{
		RentalID:      rental.ID,
		ClientID:      rental.ClientID,
		DueDate:       rental.PaymentDueDate,
		RemainingDebt: balance.Debt,
	}
	if err := jr.debtRepo.Create(ctx, debt); err != nil {
		return false, fmt.Errorf("failed to record debt: %w", err)
	}

	client, err := jr.clientRepo.GetByID(ctx, rental.ClientID)
	if err != nil {
		return true, fmt.Errorf("failed to load client: %w", err)
	}

	message := fmt.Sprintf("Qarzingiz %d so'm. Iltimos, to'lov qiling.", balance.Debt)
	if err := jr.sms.SendSMS(ctx, client.Phone, message); err != nil {
		// The debt record stands even when the reminder fails to go out.
		return true, fmt.Errorf("failed to send reminder: %w", err)
	}

	logger.Info("Recorded debt and sent reminder",
		"rental_id", rental.ID,
		"client_id", rental.ClientID,
		"remaining_debt", balance.Debt)
	return true, nil
}

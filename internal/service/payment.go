package service

import (
	"context"
	"fmt"
	"time"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	"ijara-backend/internal/utils"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
	clientRepo  repository.ClientRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	rentalRepo repository.RentalRepository,
	clientRepo repository.ClientRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		clientRepo:  clientRepo,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: clientId is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if _, err := s.clientRepo.GetByID(ctx, in.ClientID); err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: client %s does not exist", ErrValidation, in.ClientID)
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, ok := utils.ParseDate(date); !ok {
		return nil, fmt.Errorf("%w: date must be yyyy-mm-dd", ErrValidation)
	}

	payment := &domain.Payment{
		ClientID: in.ClientID,
		RentalID: in.RentalID,
		Amount:   in.Amount,
		Date:     date,
		Note:     in.Note,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	// Best effort: the payment itself is already durable, so a failure to
	// refresh cached rental statuses is logged rather than surfaced.
	if err := s.settleIfCleared(ctx, in.ClientID); err != nil {
		logger.Error("Failed to refresh rental statuses after payment",
			"client_id", in.ClientID,
			"error", err)
	}

	return payment, nil
}

// settleIfCleared marks the client's open rentals as paid once payments
// cover the full balance. Status is a cached view of the balance formula;
// the totals are frozen at the moment of settlement so the debt cannot
// reappear as active projections keep growing.
func (s *paymentService) settleIfCleared(ctx context.Context, clientID string) error {
	rentals, err := s.rentalRepo.ListByClient(ctx, clientID)
	if err != nil {
		return err
	}
	payments, err := s.paymentRepo.ListByClient(ctx, clientID)
	if err != nil {
		return err
	}

	now := time.Now()
	balance := utils.ClientBalance(rentals, payments, now)
	if balance.Total == 0 || balance.Debt > 0 {
		return nil
	}

	for i := range rentals {
		rental := &rentals[i]
		if rental.Status == domain.RentalStatusPaid {
			continue
		}
		rental.TotalDays = utils.EffectiveDays(rental, now)
		rental.TotalPrice = utils.EffectiveTotal(rental, now)
		rental.Status = domain.RentalStatusPaid
		if err := s.rentalRepo.Update(ctx, rental); err != nil {
			return err
		}
	}
	return nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByClient(ctx, clientID)
}

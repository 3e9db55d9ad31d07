package service

import (
	"context"
	"fmt"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

type debtService struct {
	debtRepo repository.DebtRepository
}

func NewDebtService(debtRepo repository.DebtRepository) DebtService {
	return &debtService{debtRepo: debtRepo}
}

func (s *debtService) CreateDebt(ctx context.Context, debt *domain.Debt) error {
	if debt.ClientID == "" || debt.RentalID == "" {
		return fmt.Errorf("%w: rental_id and client_id are required", ErrValidation)
	}
	if debt.RemainingDebt <= 0 {
		return fmt.Errorf("%w: remaining_debt must be positive", ErrValidation)
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

func (s *debtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	return s.debtRepo.List(ctx)
}

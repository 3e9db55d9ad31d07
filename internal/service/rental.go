package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
	"ijara-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	clientRepo repository.ClientRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, clientRepo repository.ClientRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo, clientRepo: clientRepo}
}

func (s *rentalService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	if err := validateRentalInput(in); err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, in.ClientID); err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: client %s does not exist", ErrValidation, in.ClientID)
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	start, ok := utils.ParseDate(in.StartDate)
	if !ok {
		return nil, fmt.Errorf("%w: startDate must be yyyy-mm-dd", ErrValidation)
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// The agreed end date doubles as the payment due date; the sweep job
	// compares against it.
	endDate := start.AddDate(0, 0, in.Days).Format("2006-01-02")

	rental := &domain.Rental{
		ClientID:       in.ClientID,
		ProductName:    strings.TrimSpace(in.ProductName),
		ProductType:    strings.TrimSpace(in.ProductType),
		ProductSize:    strings.TrimSpace(in.ProductSize),
		Quantity:       quantity,
		DailyPrice:     in.DailyPrice,
		StartDate:      in.StartDate,
		EndDate:        endDate,
		PaymentDueDate: endDate,
		TotalDays:      in.Days,
		TotalPrice:     utils.AccruedPrice(in.DailyPrice, quantity, in.Days),
		Status:         domain.RentalStatusActive,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListByClient(ctx context.Context, clientID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByClient(ctx, clientID)
}

// ReturnRental closes out an active rental. The day count and total price
// are computed against the chosen return date and persisted; from then on
// the stored values are authoritative and are never recomputed, so the
// amount owed stays anchored to the actual return date.
func (s *rentalService) ReturnRental(ctx context.Context, id, returnDate string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Settled() {
		return nil, fmt.Errorf("%w: rental %s is already %s", ErrValidation, id, rental.Status)
	}
	if _, ok := utils.ParseDate(returnDate); !ok {
		return nil, fmt.Errorf("%w: returnDate must be yyyy-mm-dd", ErrValidation)
	}

	days := utils.RentalDays(rental.StartDate, returnDate, time.Now())
	rental.ReturnDate = returnDate
	rental.TotalDays = days
	rental.TotalPrice = utils.AccruedPrice(rental.DailyPrice, rental.Quantity, days)
	rental.Status = domain.RentalStatusReturned

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to update rental: %w", err)
	}
	return rental, nil
}

func validateRentalInput(in CreateRentalInput) error {
	if in.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrValidation)
	}
	if strings.TrimSpace(in.ProductName) == "" {
		return fmt.Errorf("%w: productName is required", ErrValidation)
	}
	if strings.TrimSpace(in.ProductType) == "" {
		return fmt.Errorf("%w: productType is required", ErrValidation)
	}
	if in.DailyPrice <= 0 {
		return fmt.Errorf("%w: dailyPrice must be positive", ErrValidation)
	}
	if in.StartDate == "" {
		return fmt.Errorf("%w: startDate is required", ErrValidation)
	}
	if in.Days <= 0 {
		return fmt.Errorf("%w: days must be positive", ErrValidation)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	"ijara-backend/internal/utils"
)

type clientService struct {
	clientRepo  repository.ClientRepository
	rentalRepo  repository.RentalRepository
	paymentRepo repository.PaymentRepository
	rentals     RentalService
}

func NewClientService(
	clientRepo repository.ClientRepository,
	rentalRepo repository.RentalRepository,
	paymentRepo repository.PaymentRepository,
	rentals RentalService,
) ClientService {
	return &clientService{
		clientRepo:  clientRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		rentals:     rentals,
	}
}

func (s *clientService) CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error) {
	if err := validateClientInput(in); err != nil {
		return nil, err
	}

	client := &domain.Client{
		FullName:   strings.TrimSpace(in.FullName),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		PassportID: strings.TrimSpace(in.PassportID),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// CreateClientWithRental creates the client and its first rental in two
// steps. The store has no multi-record transactions, so a failed rental
// insert triggers a compensating client delete instead of leaving a
// clientless rental form half-applied.
func (s *clientService) CreateClientWithRental(ctx context.Context, clientIn CreateClientInput, rentalIn CreateRentalInput) (*domain.Client, *domain.Rental, error) {
	client, err := s.CreateClient(ctx, clientIn)
	if err != nil {
		return nil, nil, err
	}

	rentalIn.ClientID = client.ID
	rental, err := s.rentals.CreateRental(ctx, rentalIn)
	if err != nil {
		if delErr := s.clientRepo.Delete(ctx, client.ID); delErr != nil {
			logger.Error("Compensating client delete failed",
				"client_id", client.ID,
				"error", delErr)
		}
		return nil, nil, fmt.Errorf("failed to create initial rental: %w", err)
	}

	return client, rental, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *clientService) ClientBalance(ctx context.Context, id string) (*domain.Balance, error) {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	rentals, err := s.rentalRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	payments, err := s.paymentRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	balance := utils.ClientBalance(rentals, payments, time.Now())
	return &balance, nil
}

func (s *clientService) ListClientStats(ctx context.Context) ([]ClientStats, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rentalsByClient := make(map[string][]domain.Rental)
	for _, r := range rentals {
		rentalsByClient[r.ClientID] = append(rentalsByClient[r.ClientID], r)
	}
	paymentsByClient := make(map[string][]domain.Payment)
	for _, p := range payments {
		paymentsByClient[p.ClientID] = append(paymentsByClient[p.ClientID], p)
	}

	stats := make([]ClientStats, 0, len(clients))
	for _, c := range clients {
		stats = append(stats, ClientStats{
			Client:  c,
			Balance: utils.ClientBalance(rentalsByClient[c.ID], paymentsByClient[c.ID], now),
		})
	}
	return stats, nil
}

func validateClientInput(in CreateClientInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(in.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"ijara-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no record matches.
var ErrNotFound = errors.New("record not found")

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Rental, error)
	// ListDueBefore returns rentals whose payment due date is strictly
	// before the given yyyy-mm-dd date, regardless of status.
	ListDueBefore(ctx context.Context, date string) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context) ([]domain.Payment, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
	ListByRental(ctx context.Context, rentalID string) ([]domain.Payment, error)
	Delete(ctx context.Context, id string) error
}

type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	List(ctx context.Context) ([]domain.Debt, error)
	// LatestByRental returns the most recently created debt record for a
	// rental, or ErrNotFound when none exists. The sweep's cooldown check
	// relies on it.
	LatestByRental(ctx context.Context, rentalID string) (*domain.Debt, error)
}

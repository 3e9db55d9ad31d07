package service

import (
	"context"
	"errors"

	"ijara-backend/internal/domain"
)

// ErrValidation marks caller mistakes (missing or malformed fields) so the
// HTTP layer can answer 400 instead of 500.
var ErrValidation = errors.New("validation error")

// CreateClientInput carries the client form fields.
type CreateClientInput struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PassportID string `json:"passportId"`
}

// CreateRentalInput carries the rental form fields. Days is the agreed
// rental length; the scheduled end date and payment due date derive from it.
type CreateRentalInput struct {
	ClientID    string `json:"clientId"`
	ProductName string `json:"productName"`
	ProductType string `json:"productType"`
	ProductSize string `json:"productSize"`
	Quantity    int    `json:"quantity"`
	DailyPrice  int64  `json:"dailyPrice"`
	StartDate   string `json:"startDate"`
	Days        int    `json:"days"`
}

// RecordPaymentInput carries the payment form fields. RentalID is optional.
type RecordPaymentInput struct {
	ClientID string `json:"clientId"`
	RentalID string `json:"rentalId"`
	Amount   int64  `json:"amount"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

// ClientStats pairs a client with its derived balance.
type ClientStats struct {
	Client  domain.Client  `json:"client"`
	Balance domain.Balance `json:"balance"`
}

type ClientService interface {
	CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	// CreateClientWithRental runs the two-step create as a saga: if the
	// rental insert fails, the freshly created client is deleted again.
	CreateClientWithRental(ctx context.Context, client CreateClientInput, rental CreateRentalInput) (*domain.Client, *domain.Rental, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ClientBalance(ctx context.Context, id string) (*domain.Balance, error)
	ListClientStats(ctx context.Context) ([]ClientStats, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Rental, error)
	// ReturnRental freezes the rental's day count and total price at the
	// given return date; the frozen total is authoritative from then on.
	ReturnRental(ctx context.Context, id, returnDate string) (*domain.Rental, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
}

type DebtService interface {
	CreateDebt(ctx context.Context, debt *domain.Debt) error
	ListDebts(ctx context.Context) ([]domain.Debt, error)
}

// SMSSender delivers a text message to a phone number. The production
// implementation talks to the Eskiz gateway.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type AuthService interface {
	// Login verifies the admin credential and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)
}

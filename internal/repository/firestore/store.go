package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"ijara-backend/internal/repository"
)

// Collection names shared by the backend and the admin UI.
const (
	clientsCollection  = "clients"
	rentalsCollection  = "rentals"
	paymentsCollection = "payments"
	debtsCollection    = "debts"
)

// Store bundles the Firestore-backed repositories behind one handle.
// Deleting a client here does NOT cascade to rentals or payments; orphans
// stay discoverable by clientId. The in-memory variant behaves differently
// on purpose.
type Store struct {
	client *firestore.Client
	repository.ClientRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.DebtRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client:            client,
		ClientRepository:  NewClientRepository(client),
		RentalRepository:  NewRentalRepository(client),
		PaymentRepository: NewPaymentRepository(client),
		DebtRepository:    NewDebtRepository(client),
	}
}

// Connect initializes the Firebase app and opens a Firestore client.
// credentialsFile may be empty, in which case application default
// credentials are used.
func Connect(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firestore client: %w", err)
	}
	return client, nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}

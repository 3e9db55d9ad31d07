package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

type clientRepository struct {
	client *firestore.Client
}

func NewClientRepository(client *firestore.Client) repository.ClientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	ref := r.client.Collection(clientsCollection).NewDoc()
	if _, err := ref.Set(ctx, c); err != nil {
		return err
	}
	c.ID = ref.ID
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	snap, err := r.client.Collection(clientsCollection).Doc(id).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var c domain.Client
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	iter := r.client.Collection(clientsCollection).OrderBy("fullName", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var clients []domain.Client
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c domain.Client
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = snap.Ref.ID
		clients = append(clients, c)
	}
	return clients, nil
}

// Delete removes the client document only. Related rentals and payments
// are left in place, keyed by the now-dangling clientId.
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(clientsCollection).Doc(id).Delete(ctx)
	return err
}

package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

type paymentRepository struct {
	client *firestore.Client
}

func NewPaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	p.CreatedAt = time.Now()

	ref := r.client.Collection(paymentsCollection).NewDoc()
	if _, err := ref.Set(ctx, p); err != nil {
		return err
	}
	p.ID = ref.ID
	return nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	iter := r.client.Collection(paymentsCollection).OrderBy("date", firestore.Desc).Documents(ctx)
	return collectPayments(iter)
}

func (r *paymentRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	iter := r.client.Collection(paymentsCollection).
		Where("clientId", "==", clientID).
		Documents(ctx)
	return collectPayments(iter)
}

func (r *paymentRepository) ListByRental(ctx context.Context, rentalID string) ([]domain.Payment, error) {
	iter := r.client.Collection(paymentsCollection).
		Where("rentalId", "==", rentalID).
		Documents(ctx)
	return collectPayments(iter)
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(paymentsCollection).Doc(id).Delete(ctx)
	return err
}

func collectPayments(iter *firestore.DocumentIterator) ([]domain.Payment, error) {
	defer iter.Stop()

	var payments []domain.Payment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p domain.Payment
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		payments = append(payments, p)
	}
	return payments, nil
}

package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

type debtRepository struct {
	client *firestore.Client
}

func NewDebtRepository(client *firestore.Client) repository.DebtRepository {
	return &debtRepository{client: client}
}

func (r *debtRepository) Create(ctx context.Context, d *domain.Debt) error {
	d.CreatedAt = time.Now()

	ref := r.client.Collection(debtsCollection).NewDoc()
	if _, err := ref.Set(ctx, d); err != nil {
		return err
	}
	d.ID = ref.ID
	return nil
}

func (r *debtRepository) List(ctx context.Context) ([]domain.Debt, error) {
	iter := r.client.Collection(debtsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var debts []domain.Debt
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d domain.Debt
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		d.ID = snap.Ref.ID
		debts = append(debts, d)
	}
	return debts, nil
}

func (r *debtRepository) LatestByRental(ctx context.Context, rentalID string) (*domain.Debt, error) {
	iter := r.client.Collection(debtsCollection).
		Where("rental_id", "==", rentalID).
		OrderBy("createdAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var d domain.Debt
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	d.ID = snap.Ref.ID
	return &d, nil
}

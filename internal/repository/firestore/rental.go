package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

type rentalRepository struct {
	client *firestore.Client
}

func NewRentalRepository(client *firestore.Client) repository.RentalRepository {
	return &rentalRepository{client: client}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now

	ref := r.client.Collection(rentalsCollection).NewDoc()
	if _, err := ref.Set(ctx, rt); err != nil {
		return err
	}
	rt.ID = ref.ID
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	snap, err := r.client.Collection(rentalsCollection).Doc(id).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rentalFromSnap(snap)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	iter := r.client.Collection(rentalsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return collectRentals(iter)
}

func (r *rentalRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Rental, error) {
	iter := r.client.Collection(rentalsCollection).
		Where("clientId", "==", clientID).
		Documents(ctx)
	return collectRentals(iter)
}

// ListDueBefore matches rentals by the lexicographic order of yyyy-mm-dd
// strings, which coincides with calendar order.
func (r *rentalRepository) ListDueBefore(ctx context.Context, date string) ([]domain.Rental, error) {
	iter := r.client.Collection(rentalsCollection).
		Where("paymentDueDate", "<", date).
		Documents(ctx)
	return collectRentals(iter)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	rt.UpdatedAt = time.Now()
	_, err := r.client.Collection(rentalsCollection).Doc(rt.ID).Set(ctx, rt)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(rentalsCollection).Doc(id).Delete(ctx)
	return err
}

func rentalFromSnap(snap *firestore.DocumentSnapshot) (*domain.Rental, error) {
	var rt domain.Rental
	if err := snap.DataTo(&rt); err != nil {
		return nil, err
	}
	rt.ID = snap.Ref.ID
	return &rt, nil
}

func collectRentals(iter *firestore.DocumentIterator) ([]domain.Rental, error) {
	defer iter.Stop()

	var rentals []domain.Rental
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		rt, err := rentalFromSnap(snap)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, nil
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	c := &domain.Client{FullName: "Aziz Karimov", Phone: "998901234567", Address: "Tashkent"}
	require.NoError(t, store.Clients().Create(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := store.Clients().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aziz Karimov", got.FullName)

	_, err = store.Clients().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	list, err := store.Clients().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// The cascade below is memory-store behavior only. The Firestore store
// deliberately does NOT cascade; its half of the contract is pinned in
// firestore's TestClientDeleteLeavesRentalsAndPayments.
func TestClientDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	c := &domain.Client{FullName: "Bekzod", Phone: "998900000001", Address: "Samarkand"}
	require.NoError(t, store.Clients().Create(ctx, c))
	other := &domain.Client{FullName: "Dilshod", Phone: "998900000002", Address: "Bukhara"}
	require.NoError(t, store.Clients().Create(ctx, other))

	rt := &domain.Rental{ClientID: c.ID, ProductName: "Lesa", StartDate: "2025-08-01", DailyPrice: 10000, Quantity: 1, Status: domain.RentalStatusActive}
	require.NoError(t, store.Rentals().Create(ctx, rt))
	keep := &domain.Rental{ClientID: other.ID, ProductName: "Stoyka", StartDate: "2025-08-01", DailyPrice: 5000, Quantity: 2, Status: domain.RentalStatusActive}
	require.NoError(t, store.Rentals().Create(ctx, keep))

	p := &domain.Payment{ClientID: c.ID, Amount: 50000, Date: "2025-08-10"}
	require.NoError(t, store.Payments().Create(ctx, p))

	require.NoError(t, store.Clients().Delete(ctx, c.ID))

	// The deleted client's rentals and payments are gone with it.
	rentals, err := store.Rentals().ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rentals)
	payments, err := store.Payments().ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	// The other client's records are untouched.
	rentals, err = store.Rentals().ListByClient(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestRentalListDueBefore(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	overdue := &domain.Rental{ClientID: "c1", PaymentDueDate: "2025-08-10", Status: domain.RentalStatusActive}
	require.NoError(t, store.Rentals().Create(ctx, overdue))
	future := &domain.Rental{ClientID: "c1", PaymentDueDate: "2025-09-10", Status: domain.RentalStatusActive}
	require.NoError(t, store.Rentals().Create(ctx, future))
	noDue := &domain.Rental{ClientID: "c1", Status: domain.RentalStatusActive}
	require.NoError(t, store.Rentals().Create(ctx, noDue))

	due, err := store.Rentals().ListDueBefore(ctx, "2025-08-20")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, overdue.ID, due[0].ID)
}

func TestDebtLatestByRental(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Debts().LatestByRental(ctx, "r1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	first := &domain.Debt{RentalID: "r1", ClientID: "c1", DueDate: "2025-08-01", RemainingDebt: 100000}
	require.NoError(t, store.Debts().Create(ctx, first))
	second := &domain.Debt{RentalID: "r1", ClientID: "c1", DueDate: "2025-08-01", RemainingDebt: 80000}
	require.NoError(t, store.Debts().Create(ctx, second))
	unrelated := &domain.Debt{RentalID: "r2", ClientID: "c2", DueDate: "2025-08-01", RemainingDebt: 5000}
	require.NoError(t, store.Debts().Create(ctx, unrelated))

	latest, err := store.Debts().LatestByRental(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(80000), latest.RemainingDebt)
}

func TestPaymentScopes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Payments().Create(ctx, &domain.Payment{ClientID: "c1", RentalID: "r1", Amount: 1000, Date: "2025-08-01"}))
	require.NoError(t, store.Payments().Create(ctx, &domain.Payment{ClientID: "c1", Amount: 2000, Date: "2025-08-02"}))
	require.NoError(t, store.Payments().Create(ctx, &domain.Payment{ClientID: "c2", RentalID: "r2", Amount: 3000, Date: "2025-08-03"}))

	byClient, err := store.Payments().ListByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byRental, err := store.Payments().ListByRental(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, byRental, 1)
	assert.Equal(t, int64(1000), byRental[0].Amount)
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/repository"
)

// Store is the in-memory record store variant. It is constructed once per
// process and injected into consumers; there is no ambient global state.
// Unlike the Firestore variant, deleting a client here cascades to the
// client's rentals and payments.
type Store struct {
	mu       sync.RWMutex
	clients  map[string]domain.Client
	rentals  map[string]domain.Rental
	payments map[string]domain.Payment
	debts    map[string]domain.Debt
}

func NewStore() *Store {
	return &Store{
		clients:  make(map[string]domain.Client),
		rentals:  make(map[string]domain.Rental),
		payments: make(map[string]domain.Payment),
		debts:    make(map[string]domain.Debt),
	}
}

// Clients returns the store's client repository view.
func (s *Store) Clients() repository.ClientRepository   { return (*clientRepo)(s) }
func (s *Store) Rentals() repository.RentalRepository   { return (*rentalRepo)(s) }
func (s *Store) Payments() repository.PaymentRepository { return (*paymentRepo)(s) }
func (s *Store) Debts() repository.DebtRepository       { return (*debtRepo)(s) }

type clientRepo Store

func (r *clientRepo) Create(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.clients[c.ID] = *c
	return nil
}

func (r *clientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *clientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].FullName < clients[j].FullName })
	return clients, nil
}

// Delete cascades: the client's rentals and payments go with it.
func (r *clientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, id)
	for rid, rt := range r.rentals {
		if rt.ClientID == id {
			delete(r.rentals, rid)
		}
	}
	for pid, p := range r.payments {
		if p.ClientID == id {
			delete(r.payments, pid)
		}
	}
	return nil
}

type rentalRepo Store

func (r *rentalRepo) Create(_ context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	rt.ID = uuid.NewString()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *rentalRepo) GetByID(_ context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rt, nil
}

func (r *rentalRepo) List(_ context.Context) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.Rental) bool { return true }), nil
}

func (r *rentalRepo) ListByClient(_ context.Context, clientID string) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(rt domain.Rental) bool { return rt.ClientID == clientID }), nil
}

func (r *rentalRepo) ListDueBefore(_ context.Context, date string) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(rt domain.Rental) bool {
		return rt.PaymentDueDate != "" && rt.PaymentDueDate < date
	}), nil
}

func (r *rentalRepo) collect(keep func(domain.Rental) bool) []domain.Rental {
	var rentals []domain.Rental
	for _, rt := range r.rentals {
		if keep(rt) {
			rentals = append(rentals, rt)
		}
	}
	sort.Slice(rentals, func(i, j int) bool { return rentals[i].CreatedAt.After(rentals[j].CreatedAt) })
	return rentals
}

func (r *rentalRepo) Update(_ context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rentals[rt.ID]; !ok {
		return repository.ErrNotFound
	}
	rt.UpdatedAt = time.Now()
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *rentalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rentals, id)
	return nil
}

type paymentRepo Store

func (r *paymentRepo) Create(_ context.Context, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	r.payments[p.ID] = *p
	return nil
}

func (r *paymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.Payment) bool { return true }), nil
}

func (r *paymentRepo) ListByClient(_ context.Context, clientID string) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p domain.Payment) bool { return p.ClientID == clientID }), nil
}

func (r *paymentRepo) ListByRental(_ context.Context, rentalID string) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p domain.Payment) bool { return p.RentalID == rentalID }), nil
}

func (r *paymentRepo) collect(keep func(domain.Payment) bool) []domain.Payment {
	var payments []domain.Payment
	for _, p := range r.payments {
		if keep(p) {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].Date > payments[j].Date })
	return payments
}

func (r *paymentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.payments, id)
	return nil
}

type debtRepo Store

func (r *debtRepo) Create(_ context.Context, d *domain.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	r.debts[d.ID] = *d
	return nil
}

func (r *debtRepo) List(_ context.Context) ([]domain.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	debts := make([]domain.Debt, 0, len(r.debts))
	for _, d := range r.debts {
		debts = append(debts, d)
	}
	sort.Slice(debts, func(i, j int) bool { return debts[i].CreatedAt.After(debts[j].CreatedAt) })
	return debts, nil
}

func (r *debtRepo) LatestByRental(_ context.Context, rentalID string) (*domain.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Debt
	for _, d := range r.debts {
		if d.RentalID != rentalID {
			continue
		}
		d := d
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = &d
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

package domain

import "time"

// Debt marks an overdue, unpaid rental balance. Debts are created only by
// the sweep job and form an append-only log.
type Debt struct {
	ID            string    `json:"id" firestore:"-"`
	RentalID      string    `json:"rental_id" firestore:"rental_id"`
	ClientID      string    `json:"client_id" firestore:"client_id"`
	DueDate       string    `json:"due_date" firestore:"due_date"`
	RemainingDebt int64     `json:"remaining_debt" firestore:"remaining_debt"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

package domain

import "time"

// Payment is an append-only record of money received from a client.
// RentalID is optional: payments may settle a specific rental or the
// client's balance as a whole.
type Payment struct {
	ID       string `json:"id" firestore:"-"`
	ClientID string `json:"clientId" firestore:"clientId"`
	RentalID string `json:"rentalId,omitempty" firestore:"rentalId,omitempty"`
	// Amount in so'm, always positive.
	Amount    int64     `json:"amount" firestore:"amount"`
	Date      string    `json:"date" firestore:"date"`
	Note      string    `json:"note,omitempty" firestore:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

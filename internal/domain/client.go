package domain

import "time"

// Client is one renting customer. Clients are never mutated after creation
// except for deletion.
type Client struct {
	ID         string    `json:"id" firestore:"-"`
	FullName   string    `json:"fullName" firestore:"fullName"`
	Phone      string    `json:"phone" firestore:"phone"`
	Address    string    `json:"address" firestore:"address"`
	PassportID string    `json:"passportId,omitempty" firestore:"passportId,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" firestore:"updatedAt"`
}

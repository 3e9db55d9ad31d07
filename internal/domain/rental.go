package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "active"
	RentalStatusReturned RentalStatus = "returned"
	RentalStatusPaid     RentalStatus = "paid"
)

// Rental is one product lent to a client for a date range, billed by day.
// Dates are calendar dates in yyyy-mm-dd form with no time component.
type Rental struct {
	ID          string `json:"id" firestore:"-"`
	ClientID    string `json:"clientId" firestore:"clientId"`
	ProductName string `json:"productName" firestore:"productName"`
	ProductType string `json:"productType" firestore:"productType"`
	ProductSize string `json:"productSize,omitempty" firestore:"productSize,omitempty"`
	Quantity    int    `json:"quantity" firestore:"quantity"`
	// DailyPrice is the per-unit daily rate in so'm.
	DailyPrice int64  `json:"dailyPrice" firestore:"dailyPrice"`
	StartDate  string `json:"startDate" firestore:"startDate"`
	// EndDate is the scheduled end of the rental; PaymentDueDate mirrors it
	// and is what the debt sweep compares against.
	EndDate        string `json:"endDate" firestore:"endDate"`
	PaymentDueDate string `json:"paymentDueDate" firestore:"paymentDueDate"`
	// ReturnDate is set once the product comes back. From that point on
	// TotalDays and TotalPrice are frozen and must not be recomputed.
	ReturnDate string       `json:"returnDate,omitempty" firestore:"returnDate,omitempty"`
	TotalDays  int          `json:"totalDays" firestore:"totalDays"`
	TotalPrice int64        `json:"totalPrice" firestore:"totalPrice"`
	Status     RentalStatus `json:"status" firestore:"status"`
	CreatedAt  time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt" firestore:"updatedAt"`
}

// Settled reports whether the rental has stopped accruing charges.
func (r *Rental) Settled() bool {
	return r.Status == RentalStatusReturned || r.Status == RentalStatusPaid
}

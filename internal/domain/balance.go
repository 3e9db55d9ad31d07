package domain

// Balance is the derived {total, paid, debt} view for a client or a single
// rental. It is recomputed from rentals and payments on every read and is
// never persisted as a source of truth.
type Balance struct {
	Total int64 `json:"total"`
	Paid  int64 `json:"paid"`
	Debt  int64 `json:"debt"`
}

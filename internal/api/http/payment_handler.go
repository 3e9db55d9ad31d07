package http

import (
	"net/http"

	"ijara-backend/internal/service"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	payments service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.RecordPaymentInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	payment, err := h.payments.RecordPayment(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		payments, err := h.payments.ListByClient(r.Context(), clientID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, payments)
		return
	}

	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

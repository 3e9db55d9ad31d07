package http

import (
	"net/http"

	"ijara-backend/internal/domain"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/service"
)

// DebtHandler handles HTTP requests for debt records
type DebtHandler struct {
	debts service.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debts service.DebtService) *DebtHandler {
	return &DebtHandler{debts: debts}
}

// Create records a debt manually. The sweep job is the usual writer; this
// endpoint exists for corrections entered by the admin.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var debt domain.Debt
	if err := decodeJSON(r, &debt); err != nil {
		respondError(w, err)
		return
	}

	if err := h.debts.CreateDebt(r.Context(), &debt); err != nil {
		respondError(w, err)
		return
	}

	if admin, ok := AdminFromContext(r.Context()); ok {
		logger.Info("Debt recorded manually",
			"rental_id", debt.RentalID,
			"remaining_debt", debt.RemainingDebt,
			"admin", admin.Username)
	}
	respondJSON(w, http.StatusOK, debt)
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	debts, err := h.debts.ListDebts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, debts)
}

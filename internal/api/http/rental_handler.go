package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ijara-backend/internal/service"
)

// RentalHandler handles HTTP requests for rentals
type RentalHandler struct {
	rentals service.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRentalInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		rentals, err := h.rentals.ListByClient(r.Context(), clientID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rentals)
		return
	}

	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

type returnRentalRequest struct {
	ReturnDate string `json:"returnDate"`
}

// Return closes out a rental at the given return date.
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentals.ReturnRental(r.Context(), mux.Vars(r)["id"], req.ReturnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ijara-backend/internal/logger"
	"ijara-backend/internal/service"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	clients service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type createClientRequest struct {
	service.CreateClientInput
	// Rental, when present, is created together with the client.
	Rental *service.CreateRentalInput `json:"rental"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.Rental != nil {
		client, rental, err := h.clients.CreateClientWithRental(r.Context(), req.CreateClientInput, *req.Rental)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"client": client,
			"rental": rental,
		})
		return
	}

	client, err := h.clients.CreateClient(r.Context(), req.CreateClientInput)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.GetClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClients(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

// ListStats returns all clients with their derived balances in one shot,
// matching what the dashboard table needs.
func (h *ClientHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.clients.ListClientStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *ClientHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.clients.ClientBalance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, balance)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.clients.DeleteClient(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	if admin, ok := AdminFromContext(r.Context()); ok {
		logger.Info("Client deleted", "client_id", id, "admin", admin.Username)
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

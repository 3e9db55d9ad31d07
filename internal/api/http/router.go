package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"ijara-backend/internal/security"
	"ijara-backend/internal/service"
)

// Services holds the service dependencies the HTTP layer exposes.
type Services struct {
	Clients  service.ClientService
	Rentals  service.RentalService
	Payments service.PaymentService
	Debts    service.DebtService
	Auth     service.AuthService
}

// NewRouter wires all handlers onto a mux router. Every route except the
// login endpoint requires a valid admin token.
func NewRouter(svcs Services, tokens security.TokenManager) http.Handler {
	clientHandler := NewClientHandler(svcs.Clients)
	rentalHandler := NewRentalHandler(svcs.Rentals)
	paymentHandler := NewPaymentHandler(svcs.Payments)
	debtHandler := NewDebtHandler(svcs.Debts)
	authHandler := NewAuthHandler(svcs.Auth)

	router := mux.NewRouter()
	router.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/clients", clientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients", clientHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/clients/stats", clientHandler.ListStats).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", clientHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", clientHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/balance", clientHandler.Balance).Methods(http.MethodGet)

	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods(http.MethodPost)

	api.HandleFunc("/payments", paymentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments", paymentHandler.List).Methods(http.MethodGet)

	api.HandleFunc("/debts", debtHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/debts", debtHandler.List).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)
}

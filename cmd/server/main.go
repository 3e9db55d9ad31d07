package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "ijara-backend/internal/api/http"
	"ijara-backend/internal/config"
	"ijara-backend/internal/jobs"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	fsstore "ijara-backend/internal/repository/firestore"
	"ijara-backend/internal/repository/memory"
	"ijara-backend/internal/scheduler"
	"ijara-backend/internal/security"
	"ijara-backend/internal/service"
)

type repos struct {
	clients  repository.ClientRepository
	rentals  repository.RentalRepository
	payments repository.PaymentRepository
	debts    repository.DebtRepository
	close    func() error
}

// openStore selects the record store backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (*repos, error) {
	if cfg.Store.Type == "memory" {
		logger.Info("Using in-memory record store")
		store := memory.NewStore()
		return &repos{
			clients:  store.Clients(),
			rentals:  store.Rentals(),
			payments: store.Payments(),
			debts:    store.Debts(),
			close:    func() error { return nil },
		}, nil
	}

	logger.Info("Connecting to Firestore...", "project_id", cfg.Store.ProjectID)
	client, err := fsstore.Connect(ctx, cfg.Store.ProjectID, cfg.Store.CredentialsFile)
	if err != nil {
		return nil, err
	}
	store := fsstore.NewStore(client)
	return &repos{
		clients:  store.ClientRepository,
		rentals:  store.RentalRepository,
		payments: store.PaymentRepository,
		debts:    store.DebtRepository,
		close:    store.Close,
	}, nil
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env first so env overrides apply
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Ijara Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "type", cfg.Store.Type)

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open record store", "error", err)
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer store.close()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret)

	// Initialize Services
	smsSender := service.NewEskizClient(cfg.Eskiz)
	rentalSvc := service.NewRentalService(store.rentals, store.clients)
	clientSvc := service.NewClientService(store.clients, store.rentals, store.payments, rentalSvc)
	paymentSvc := service.NewPaymentService(store.payments, store.rentals, store.clients)
	debtSvc := service.NewDebtService(store.debts)
	authSvc := service.NewAuthService(cfg.Auth, tokenManager)

	// Initialize Job Runner and Scheduler. The server runs the daily debt
	// sweep in-process; the standalone cronjob binary covers deployments
	// where the server is not always up.
	jobRunner := jobs.NewJobRunner(store.clients, store.rentals, store.payments, store.debts, smsSender, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Clients:  clientSvc,
		Rentals:  rentalSvc,
		Payments: paymentSvc,
		Debts:    debtSvc,
		Auth:     authSvc,
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

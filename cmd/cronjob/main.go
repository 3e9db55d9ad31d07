package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ijara-backend/internal/config"
	"ijara-backend/internal/jobs"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	fsstore "ijara-backend/internal/repository/firestore"
	"ijara-backend/internal/repository/memory"
	"ijara-backend/internal/scheduler"
	"ijara-backend/internal/service"
)

type repos struct {
	clients  repository.ClientRepository
	rentals  repository.RentalRepository
	payments repository.PaymentRepository
	debts    repository.DebtRepository
	close    func() error
}

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
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-overdue-rentals', 'all-daily')")
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
	logger.Info("Starting Ijara Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open record store", "error", err)
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer store.close()

	// Initialize Job Runner
	smsSender := service.NewEskizClient(cfg.Eskiz)
	jobRunner := jobs.NewJobRunner(store.clients, store.rentals, store.payments, store.debts, smsSender, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cronScheduler.Stop()
	logger.Info("Cronjob runner stopped")
}

// runJobOnce executes a single named job and returns
func runJobOnce(jr *jobs.JobRunner, jobName string) {
	switch jobName {
	case "sweep-overdue-rentals":
		jr.SweepOverdueRentals()
	case "all-daily":
		jr.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		os.Exit(1)
	}
}

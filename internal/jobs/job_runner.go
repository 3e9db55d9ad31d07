package jobs

import (
	"time"

	"ijara-backend/internal/config"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/repository"
	"ijara-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	clientRepo  repository.ClientRepository
	rentalRepo  repository.RentalRepository
	paymentRepo repository.PaymentRepository
	debtRepo    repository.DebtRepository
	sms         service.SMSSender
	config      *config.Config

	// now is swappable so sweeps can be tested at a fixed point in time.
	now func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	clientRepo repository.ClientRepository,
	rentalRepo repository.RentalRepository,
	paymentRepo repository.PaymentRepository,
	debtRepo repository.DebtRepository,
	sms service.SMSSender,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		clientRepo:  clientRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		debtRepo:    debtRepo,
		sms:         sms,
		config:      cfg,
		now:         time.Now,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SweepOverdueRentals()
}

package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconciliationSchedule runs the sweep at the top of every minute.
const reconciliationSchedule = "0 * * * * *"

// ReconciliationJob periodically repairs divergence between orders and
// partner assignment sets. Each run executes the reconcile command in one
// transaction and logs how many links were repaired.
type ReconciliationJob struct {
	handler commands.ReconcileLinksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReconciliationJob creates the scheduled reconciliation sweep.
func NewReconciliationJob(handler commands.ReconcileLinksCommandHandler, logger *slog.Logger) *ReconciliationJob {
	return &ReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the reconciliation sweep.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileLinksCommand()

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
			return
		}

		if report.OrdersReleased > 0 || report.PartnersReleased > 0 {
			j.logger.InfoContext(ctx, "Reconciliation repaired diverged links",
				"orders_released", report.OrdersReleased,
				"partners_released", report.PartnersReleased)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}

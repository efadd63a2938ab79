package jobs

import (
	"context"
	"log/slog"

	"casetrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueEscalationJob manages the scheduled escalation of overdue cases.
// Runs hourly to raise the priority of cases whose due date has passed.
type OverdueEscalationJob struct {
	handler commands.EscalateOverdueCasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueEscalationJob creates a new job for escalating overdue cases.
// Uses EscalateOverdueCasesCommandHandler to sweep overdue cases every hour.
func NewOverdueEscalationJob(
	handler commands.EscalateOverdueCasesCommandHandler,
	logger *slog.Logger,
) *OverdueEscalationJob {
	return &OverdueEscalationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_escalation_job"),
	}
}

// Start begins the overdue escalation job to run at the top of every hour.
func (j *OverdueEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEscalateOverdueCasesCommand()

		escalated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue escalation job failed", "error", err)
			return
		}
		if escalated > 0 {
			j.logger.InfoContext(ctx, "Escalated overdue cases", "count", escalated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue escalation job started (running hourly)")
	return nil
}

// Stop stops the overdue escalation job.
func (j *OverdueEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue escalation job stopped")
}

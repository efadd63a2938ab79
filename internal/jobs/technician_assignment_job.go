package jobs

import (
	"context"
	"errors"
	"log/slog"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// TechnicianAssignmentJob manages the scheduled assignment of technicians to
// cases. Runs every 30 seconds to match unassigned cases with eligible
// technicians.
type TechnicianAssignmentJob struct {
	handler commands.AssignPendingCaseCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTechnicianAssignmentJob creates a new job for assigning technicians.
// Uses AssignPendingCaseCommandHandler to process one pending case per tick.
func NewTechnicianAssignmentJob(
	handler commands.AssignPendingCaseCommandHandler,
	logger *slog.Logger,
) *TechnicianAssignmentJob {
	return &TechnicianAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "technician_assignment_job"),
	}
}

// Start begins the technician assignment job to run every 30 seconds.
func (j *TechnicianAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingCaseCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingCaseFound) &&
				!errors.Is(err, services.ErrNoEligibleTechnicians) {
				j.logger.ErrorContext(ctx, "Technician assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Technician assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the technician assignment job.
func (j *TechnicianAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Technician assignment job stopped")
}

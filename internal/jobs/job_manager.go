package jobs

import (
	"fmt"
	"log/slog"

	"casetrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	technicianAssignmentJob *TechnicianAssignmentJob
	overdueEscalationJob    *OverdueEscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignPendingCaseHandler commands.AssignPendingCaseCommandHandler,
	escalateOverdueHandler commands.EscalateOverdueCasesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		technicianAssignmentJob: NewTechnicianAssignmentJob(assignPendingCaseHandler, logger),
		overdueEscalationJob:    NewOverdueEscalationJob(escalateOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.technicianAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start technician assignment job: %w", err)
	}

	if err := jm.overdueEscalationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.technicianAssignmentJob.Stop()
		return fmt.Errorf("failed to start overdue escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueEscalationJob.Stop()
	jm.technicianAssignmentJob.Stop()
}

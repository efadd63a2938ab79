// Package jobs provides scheduled background tasks for the case tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the case lifecycle engine.
//
// # Available Jobs
//
// 1. TechnicianAssignmentJob - Runs every 30 seconds to assign the oldest
// unassigned case to the best available technician
// 2. OverdueEscalationJob - Runs hourly to raise overdue cases to urgent
// priority
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignPendingCaseHandler, escalateOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending case, no
// eligible technicians)
// - Escalation job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs

// Package jobs provides scheduled background tasks for the intake system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required by the intake service.
//
// # Available Jobs
//
// 1. DraftCleanupJob - Runs hourly to purge Active drafts abandoned beyond the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 * * * *" and runs at the top of
// every hour. Abandoned drafts carry no deadline of their own, so an hourly
// sweep is more than frequent enough.
//
// # Error Handling
//
// - Cleanup failures are logged and retried on the next tick
// - A failed job start stops any already running jobs
package jobs

// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order lifecycle requires.
//
// # Available Jobs
//
// 1. OrderCleanupJob - Runs hourly to cancel unpaid orders stuck in pending or accepted
// 2. PhotoArchivalJob - Runs hourly to archive evidence photos past their retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, archivePhotosHandler, systemActorID, logger)
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
// - Sweep failures are logged and retried on the next tick
// - Conflicts with concurrent producer activity skip the contested order only
// - Failed job starts will stop any already running jobs
package jobs

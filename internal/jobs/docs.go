// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order fulfillment service.
//
// # Available Jobs
//
// 1. PendingBacklogJob - Runs every minute to flag stores whose pending orders pile up unaccepted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backlogHandler, backlogThreshold, logger)
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
// The backlog job uses the cron expression "* * * * *", running once a minute.
// A minute of lag is acceptable for operator alerting and keeps the query load
// on the orders table negligible.
//
// # Error Handling
//
// - Survey failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs

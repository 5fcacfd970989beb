// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the kitchen.
//
// # Available Jobs
//
// 1. PendingOrdersDigestJob - Runs hourly to log a digest of orders that still have thalis to deliver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, logger)
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
// The digest job uses the cron expression "0 0 * * * *" which fires at the
// top of every hour. The kitchen uses the digest as a running reminder of
// open orders between shifts.
//
// # Error Handling
//
// Digest failures are logged and retried on the next tick; a failed query
// never stops the scheduler.
package jobs

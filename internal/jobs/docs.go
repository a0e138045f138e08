// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order management service.
//
// # Available Jobs
//
// 1. StatusReportJob - Runs every minute to log the number of orders per lifecycle status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statusCountsHandler, logger)
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
// - Report job logs query failures and keeps running; a transient database
//   outage must not kill the scheduler
// - Failed job starts will stop any already running jobs
package jobs

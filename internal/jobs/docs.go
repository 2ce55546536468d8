// Package jobs provides scheduled background tasks for the work order tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shop floor workflow.
//
// # Available Jobs
//
// 1. PauseSweepJob - Pauses every in-progress work order at the end of the shift
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pauseHandler, schedule, logger)
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
// The pause sweep schedule is configurable through a six-field cron
// expression (seconds included). The default "0 0 18 * * *" runs the
// sweep at 18:00 every day, matching the end of the production shift.
//
// # Error Handling
//
// A sweep that finds no in-progress orders is a normal outcome and is
// logged at info level. Any other failure is logged as an error and the
// sweep retries on the next scheduled run.
package jobs

// Package jobs provides scheduled background tasks for the locker fleet.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fleet management.
//
// # Available Jobs
//
// 1. OvertimeRebindingJob - Moves deliveries whose handover window has
// fully passed to the next bookable slot of their cabinet.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(rebindHandler, "0 */5 * * * *", logger)
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
// Schedules use six-field cron expressions with a seconds column. The
// rebinding schedule comes from configuration so that operators can tune
// how quickly expired deliveries are rescheduled.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick; the rebinding
// handler itself skips individual deliveries that cannot be moved, so one
// stuck delivery never blocks the rest.
package jobs

// Package jobs provides scheduled background tasks for the bookstore service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order fulfillment.
//
// # Available Jobs
//
// 1. ShipmentBacklogJob - Runs every minute to report orders still awaiting shipment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getUnshippedOrdersHandler, logger)
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
// - Backlog read failures are logged and retried on the next tick
// - An empty backlog produces no log output
package jobs

package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentBacklogJob *ShipmentBacklogJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(unshippedOrdersReader UnshippedOrdersReader, logger *slog.Logger) *JobManager {
	return &JobManager{
		shipmentBacklogJob: NewShipmentBacklogJob(unshippedOrdersReader, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentBacklogJob.Stop()
}

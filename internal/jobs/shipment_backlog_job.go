package jobs

import (
	"context"
	"log/slog"

	"bookstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnshippedOrdersReader reads the current shipment backlog.
// Satisfied by queries.GetUnshippedOrdersQueryHandler.
type UnshippedOrdersReader interface {
	Handle(ctx context.Context, query queries.GetUnshippedOrdersQuery) ([]queries.GetUnshippedOrdersQueryResponse, error)
}

// ShipmentBacklogJob periodically reads the orders still awaiting shipment
// and reports the backlog, so stalled fulfillment shows up in the logs
// without anyone polling the admin endpoint.
type ShipmentBacklogJob struct {
	reader UnshippedOrdersReader
	cron   *cron.Cron
	logger *slog.Logger
}

// NewShipmentBacklogJob creates a job that monitors the shipment backlog.
func NewShipmentBacklogJob(reader UnshippedOrdersReader, logger *slog.Logger) *ShipmentBacklogJob {
	return &ShipmentBacklogJob{
		reader: reader,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "shipment_backlog_job"),
	}
}

// Start begins the backlog check, running once a minute.
func (j *ShipmentBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.checkBacklog(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog check.
func (j *ShipmentBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment backlog job stopped")
}

func (j *ShipmentBacklogJob) checkBacklog(ctx context.Context) {
	orders, err := j.reader.Handle(ctx, queries.NewGetUnshippedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Shipment backlog check failed", "error", err)
		return
	}

	if len(orders) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Orders awaiting shipment", "count", len(orders))
}

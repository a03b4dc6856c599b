package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUnshippedOrdersReader struct {
	orders []queries.GetUnshippedOrdersQueryResponse
	err    error
	calls  int
}

func (s *stubUnshippedOrdersReader) Handle(
	_ context.Context,
	_ queries.GetUnshippedOrdersQuery,
) ([]queries.GetUnshippedOrdersQueryResponse, error) {
	s.calls++
	return s.orders, s.err
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestShipmentBacklogJob_ReportsPendingOrders(t *testing.T) {
	reader := &stubUnshippedOrdersReader{
		orders: []queries.GetUnshippedOrdersQueryResponse{
			{ID: kernel.NewUUID(), BookID: kernel.NewUUID(), CustomerID: kernel.NewUUID()},
			{ID: kernel.NewUUID(), BookID: kernel.NewUUID(), CustomerID: kernel.NewUUID()},
		},
	}
	logger, buf := newTestLogger()
	job := NewShipmentBacklogJob(reader, logger)

	job.checkBacklog(context.Background())

	assert.Equal(t, 1, reader.calls)
	assert.Contains(t, buf.String(), "Orders awaiting shipment")
	assert.Contains(t, buf.String(), "count=2")
}

func TestShipmentBacklogJob_SilentWhenBacklogEmpty(t *testing.T) {
	reader := &stubUnshippedOrdersReader{}
	logger, buf := newTestLogger()
	job := NewShipmentBacklogJob(reader, logger)

	job.checkBacklog(context.Background())

	assert.Equal(t, 1, reader.calls)
	assert.Empty(t, buf.String())
}

func TestShipmentBacklogJob_LogsReadFailure(t *testing.T) {
	reader := &stubUnshippedOrdersReader{err: assert.AnError}
	logger, buf := newTestLogger()
	job := NewShipmentBacklogJob(reader, logger)

	job.checkBacklog(context.Background())

	assert.Contains(t, buf.String(), "Shipment backlog check failed")
}

func TestShipmentBacklogJob_StartAndStop(t *testing.T) {
	reader := &stubUnshippedOrdersReader{}
	logger, _ := newTestLogger()
	job := NewShipmentBacklogJob(reader, logger)

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAndStopAll(t *testing.T) {
	reader := &stubUnshippedOrdersReader{}
	logger, _ := newTestLogger()
	manager := NewJobManager(reader, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

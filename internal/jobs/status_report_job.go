package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many orders sit in each lifecycle
// status. The report gives operators a cheap view of the fulfillment
// backlog without querying the database by hand.
type StatusReportJob struct {
	handler queries.GetOrderStatusCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusReportJob creates a new job for reporting order status counts.
// Uses GetOrderStatusCountsQueryHandler to gather the counts every minute.
func NewStatusReportJob(handler queries.GetOrderStatusCountsQueryHandler, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job to run every minute.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatusCountsQuery()

		counts, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for _, count := range counts {
			attrs = append(attrs, count.Status.String(), count.Count)
		}
		j.logger.InfoContext(ctx, "Order status counts", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}

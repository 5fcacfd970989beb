package jobs

import (
	"context"
	"log/slog"

	"thalitrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersDigestJob periodically logs a digest of undelivered orders.
// Runs at the top of every hour so the kitchen sees its open workload
// between shifts without anyone polling the board.
type PendingOrdersDigestJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersDigestJob creates a new digest job.
// Uses GetActiveOrdersQueryHandler to fetch the open orders every hour.
func NewPendingOrdersDigestJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *PendingOrdersDigestJob {
	return &PendingOrdersDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_digest_job"),
	}
}

// Start begins the digest job to run at the top of every hour.
func (j *PendingOrdersDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		activeOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders digest failed", "error", err)
			return
		}

		remaining := 0
		for _, o := range activeOrders {
			remaining += o.RemainingQuantity
		}

		j.logger.InfoContext(ctx, "Pending orders digest",
			"open_orders", len(activeOrders),
			"remaining_thalis", remaining,
		)

		for _, o := range activeOrders {
			j.logger.InfoContext(ctx, "Open order",
				"order_id", o.ID.String(),
				"name", o.Name,
				"remaining", o.RemainingQuantity,
				"status", o.Status.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders digest job started (running hourly)")
	return nil
}

// Stop stops the digest job.
func (j *PendingOrdersDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders digest job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"pathorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingBacklogJob periodically surveys the pending order backlog across
// all stores and flags the ones letting orders pile up unaccepted.
type PendingBacklogJob struct {
	handler   queries.ListPendingBacklogQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingBacklogJob creates a job that checks the backlog every minute.
// Stores whose pending count reaches the threshold are logged as warnings.
func NewPendingBacklogJob(
	handler queries.ListPendingBacklogQueryHandler,
	threshold int,
	logger *slog.Logger,
) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the backlog survey job to run every minute.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		result, err := j.handler.Handle(ctx, queries.NewListPendingBacklogQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog survey failed", "error", err)
			return
		}

		for _, entry := range result.Entries {
			if entry.PendingCount < j.threshold {
				continue
			}
			j.logger.WarnContext(ctx, "Store has a growing pending backlog",
				"store_id", entry.StoreID.String(),
				"store_name", entry.StoreName,
				"pending_count", entry.PendingCount,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog survey job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}

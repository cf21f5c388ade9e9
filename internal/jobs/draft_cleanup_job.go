package jobs

import (
	"context"
	"log/slog"
	"time"

	"intake/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftCleanupJob periodically removes Active drafts whose last update lies
// beyond the retention window. Abandoned wizard sessions leave their draft
// behind; this job keeps the drafts table from growing without bound.
// Superseded drafts are never touched.
type DraftCleanupJob struct {
	handler   commands.PurgeAbandonedDraftsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDraftCleanupJob creates a cleanup job with the given retention window.
// Drafts untouched for longer than retention are eligible for removal.
func NewDraftCleanupJob(
	handler commands.PurgeAbandonedDraftsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *DraftCleanupJob {
	return &DraftCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "draft_cleanup_job"),
	}
}

// Start begins the cleanup job to run at the top of every hour.
func (j *DraftCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeAbandonedDraftsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned drafts", "removed", removed, "retention", j.retention)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft cleanup job started (running hourly)", "retention", j.retention)
	return nil
}

// Stop stops the draft cleanup job.
func (j *DraftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft cleanup job stopped")
}

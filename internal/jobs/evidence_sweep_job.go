package jobs

import (
	"context"
	"log/slog"
	"time"

	"paquexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EvidenceSweepJob periodically reclaims evidence files that no delivered
// parcel references. Runs hourly; each tick sweeps files older than the
// configured retention window.
type EvidenceSweepJob struct {
	handler   commands.SweepEvidenceCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewEvidenceSweepJob creates a new job for sweeping orphaned evidence files.
// Files younger than retention are never touched, so an in-flight delivery's
// freshly written photo cannot be raced.
func NewEvidenceSweepJob(
	handler commands.SweepEvidenceCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *EvidenceSweepJob {
	return &EvidenceSweepJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "evidence_sweep_job"),
	}
}

// Start begins the evidence sweep job to run hourly.
func (j *EvidenceSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepEvidenceCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Evidence sweep misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Evidence sweep failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Evidence sweep reclaimed orphaned files", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Evidence sweep job started (running hourly)")
	return nil
}

// Stop stops the evidence sweep job.
func (j *EvidenceSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Evidence sweep job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"ostrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PauseSweepJob manages the scheduled end-of-shift pause of production.
// Moves every in-progress work order to paused on the configured schedule.
type PauseSweepJob struct {
	handler  commands.PauseInProgressCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPauseSweepJob creates a new job for pausing in-progress work orders.
// The schedule is a six-field cron expression with a seconds column.
func NewPauseSweepJob(
	handler commands.PauseInProgressCommandHandler, schedule string, logger *slog.Logger,
) *PauseSweepJob {
	return &PauseSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pause_sweep_job"),
	}
}

// Start begins the pause sweep job on the configured schedule.
func (j *PauseSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPauseInProgressCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Pause sweep job failed", "error", err)
			return
		}

		paused, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pause sweep job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pause sweep completed", "paused", paused)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pause sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the pause sweep job.
func (j *PauseSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pause sweep job stopped")
}

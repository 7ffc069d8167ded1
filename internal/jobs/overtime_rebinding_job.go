package jobs

import (
	"context"
	"log/slog"

	"lockerfleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OvertimeRebindingJob periodically moves expired deliveries to the next
// bookable slot. The schedule is configurable; the default of every five
// minutes keeps expired deliveries from lingering without hammering the
// availability engine.
type OvertimeRebindingJob struct {
	handler  commands.RebindOvertimeDeliveriesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOvertimeRebindingJob creates a job for rebinding overtime deliveries.
// schedule is a six-field cron expression with a seconds column.
func NewOvertimeRebindingJob(
	handler commands.RebindOvertimeDeliveriesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OvertimeRebindingJob {
	return &OvertimeRebindingJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "overtime_rebinding_job"),
	}
}

// Start begins the overtime rebinding job on its configured schedule.
func (j *OvertimeRebindingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRebindOvertimeDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overtime rebinding job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overtime rebinding job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overtime rebinding job.
func (j *OvertimeRebindingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overtime rebinding job stopped")
}

package jobs

import (
	"fmt"
	"log/slog"

	"lockerfleet/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overtimeRebindingJob *OvertimeRebindingJob
}

// NewJobManager creates a new job manager with all required jobs.
// rebindSchedule is a six-field cron expression with a seconds column.
func NewJobManager(
	rebindHandler commands.RebindOvertimeDeliveriesCommandHandler,
	rebindSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overtimeRebindingJob: NewOvertimeRebindingJob(rebindHandler, rebindSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overtimeRebindingJob.Start(); err != nil {
		return fmt.Errorf("failed to start overtime rebinding job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overtimeRebindingJob.Stop()
}

package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(outboxRelayJob *OutboxRelayJob) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}

// WakeRelay asks the outbox relay for an immediate run.
func (jm *JobManager) WakeRelay() {
	jm.outboxRelayJob.Wake()
}

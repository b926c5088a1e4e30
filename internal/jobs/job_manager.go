package jobs

import (
	"fmt"

	"github.com/rs/zerolog"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCleanupJob  *OrderCleanupJob
	photoArchivalJob *PhotoArchivalJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	archivePhotosHandler commands.ArchivePhotosCommandHandler,
	systemActorID kernel.UUID,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		orderCleanupJob:  NewOrderCleanupJob(cancelStaleOrdersHandler, systemActorID, logger),
		photoArchivalJob: NewPhotoArchivalJob(archivePhotosHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start order cleanup job: %w", err)
	}

	if err := jm.photoArchivalJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderCleanupJob.Stop()
		return fmt.Errorf("failed to start photo archival job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.photoArchivalJob.Stop()
	jm.orderCleanupJob.Stop()
}

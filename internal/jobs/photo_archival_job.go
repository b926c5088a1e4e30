package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"printmarket/internal/core/application/usecases/commands"
)

// PhotoArchivalJob marks evidence photos past the retention window as
// archived. Runs hourly.
type PhotoArchivalJob struct {
	handler commands.ArchivePhotosCommandHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewPhotoArchivalJob creates the photo archival sweep.
func NewPhotoArchivalJob(handler commands.ArchivePhotosCommandHandler, logger zerolog.Logger) *PhotoArchivalJob {
	return &PhotoArchivalJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With().Str("component", "photo_archival_job").Logger(),
	}
}

// Start schedules the hourly sweep.
func (j *PhotoArchivalJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewArchivePhotosCommand(commands.DefaultPhotoRetention)
		if err != nil {
			j.logger.Error().Err(err).Msg("failed to build photo archival command")
			return
		}

		archived, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error().Err(err).Msg("photo archival sweep failed")
			return
		}

		if archived > 0 {
			j.logger.Info().Int("archived", archived).Msg("photos archived")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("photo archival job started")

	return nil
}

// Stop stops the sweep.
func (j *PhotoArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("photo archival job stopped")
}

package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
)

// OrderCleanupJob cancels unpaid orders that sat in pending or accepted
// past the stale age. Runs hourly.
type OrderCleanupJob struct {
	handler       commands.CancelStaleOrdersCommandHandler
	systemActorID kernel.UUID
	cron          *cron.Cron
	logger        zerolog.Logger
}

// NewOrderCleanupJob creates the stale order sweep. The system actor id is
// recorded on every cancellation's history entry.
func NewOrderCleanupJob(
	handler commands.CancelStaleOrdersCommandHandler,
	systemActorID kernel.UUID,
	logger zerolog.Logger,
) *OrderCleanupJob {
	return &OrderCleanupJob{
		handler:       handler,
		systemActorID: systemActorID,
		cron:          cron.New(),
		logger:        logger.With().Str("component", "order_cleanup_job").Logger(),
	}
}

// Start schedules the hourly sweep.
func (j *OrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.systemActorID, commands.DefaultStaleOrderAge)
		if err != nil {
			j.logger.Error().Err(err).Msg("failed to build stale order command")
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error().Err(err).Msg("stale order sweep failed")
			return
		}

		if cancelled > 0 {
			j.logger.Info().Int("cancelled", cancelled).Msg("stale unpaid orders cancelled")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("order cleanup job started")

	return nil
}

// Stop stops the sweep.
func (j *OrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("order cleanup job stopped")
}

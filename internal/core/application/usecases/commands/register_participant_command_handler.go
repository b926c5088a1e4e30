package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"
)

// RegisterParticipantCommandHandler handles sign-ins. Known emails resolve
// to the existing participant; unknown emails create one with the requested
// role.
type RegisterParticipantCommandHandler struct {
	uowFactory ParticipantUoWFactory
	logger     zerolog.Logger
}

// NewRegisterParticipantCommandHandler creates a handler for participant
// registration.
func NewRegisterParticipantCommandHandler(
	uowFactory ParticipantUoWFactory,
	logger zerolog.Logger,
) RegisterParticipantCommandHandler {
	return RegisterParticipantCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the registration command. The returned bool reports
// whether a new participant was created.
func (h RegisterParticipantCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterParticipantCommand,
) (*participant.Participant, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParticipantRepository()

	existing, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	created, err := participant.NewParticipant(
		cmd.ParticipantID(),
		cmd.Email(),
		cmd.Name(),
		cmd.Role(),
		time.Now(),
	)
	if err != nil {
		return nil, false, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	h.logger.Info().
		Str("participant_id", created.ID().String()).
		Str("role", created.Role().String()).
		Msg("participant registered")

	return created, true, nil
}

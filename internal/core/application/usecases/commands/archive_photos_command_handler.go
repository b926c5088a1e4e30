package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

var ErrArchivePhotosCommandHandlerIsNotConstructed = errors.New(
	"ArchivePhotosCommandHandler must be created via NewArchivePhotosCommandHandler constructor",
)

// ArchivePhotosCommandHandler marks photos past their retention as archived
// so housekeeping can move the binaries to cold storage.
type ArchivePhotosCommandHandler struct {
	uowFactory ArchiveUoWFactory
	logger     zerolog.Logger
}

func NewArchivePhotosCommandHandler(
	uowFactory ArchiveUoWFactory,
	logger zerolog.Logger,
) (ArchivePhotosCommandHandler, error) {
	if uowFactory == nil {
		return ArchivePhotosCommandHandler{}, errors.New("uowFactory must not be nil")
	}

	return ArchivePhotosCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}, nil
}

// Handle archives every photo uploaded before the retention cutoff. Returns
// the number of photos archived.
func (h ArchivePhotosCommandHandler) Handle(ctx context.Context, cmd ArchivePhotosCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.Retention())

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() { _ = uow.Rollback(ctx) }()

	photos, err := uow.PhotoRepository().GetUploadedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	archived := 0

	for _, photo := range photos {
		if photo.Archived() {
			continue
		}

		photo.Archive()

		if err = uow.PhotoRepository().Update(ctx, photo); err != nil {
			return 0, err
		}

		archived++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}

package commands

import (
	"errors"
	"time"

	"printmarket/internal/pkg/guard"
)

// DefaultPhotoRetention is how long an evidence photo stays in hot storage
// before the archival job moves it to cold storage.
const DefaultPhotoRetention = 90 * 24 * time.Hour

var (
	ErrArchivePhotosCommandIsNotConstructed = errors.New(
		"ArchivePhotosCommand must be created via NewArchivePhotosCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// ArchivePhotosCommand triggers archival of photos older than the given
// retention. Job-driven.
type ArchivePhotosCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewArchivePhotosCommand creates a command to archive old photos.
func NewArchivePhotosCommand(retention time.Duration) (ArchivePhotosCommand, error) {
	archiveCommand := ArchivePhotosCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := archiveCommand.setRetention(retention); err != nil {
		return ArchivePhotosCommand{}, err
	}

	return archiveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchivePhotosCommand) Validate() error {
	return c.guard.Validate(ErrArchivePhotosCommandIsNotConstructed)
}

// Retention returns how long photos stay in hot storage.
func (c ArchivePhotosCommand) Retention() time.Duration {
	return c.retention
}

func (c *ArchivePhotosCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}

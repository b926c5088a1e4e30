package ports

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
)

// PhotoRepository defines the persistence contract for order photos.
type PhotoRepository interface {
	// Add persists a newly attached photo.
	Add(ctx context.Context, photo *order.Photo) error

	// Update persists changes to an existing photo, currently only the
	// archived flag.
	Update(ctx context.Context, photo *order.Photo) error

	// GetByOrder retrieves all photos attached to an order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Photo, error)

	// CountByOrderAndType counts non-archived photos of the given type
	// attached to an order. Used to enforce photo preconditions on
	// production completion.
	CountByOrderAndType(ctx context.Context, orderID kernel.UUID, photoType order.PhotoType) (int, error)

	// GetUploadedBefore retrieves non-archived photos uploaded before the
	// cutoff. Used by the archival job.
	GetUploadedBefore(ctx context.Context, cutoff time.Time) ([]*order.Photo, error)
}

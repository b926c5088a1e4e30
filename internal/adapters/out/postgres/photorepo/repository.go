package photorepo

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPhotoRepository implements PhotoRepository using GORM.
type GormPhotoRepository struct {
	db *gorm.DB
}

// NewGormPhotoRepository creates a new GORM photo repository.
func NewGormPhotoRepository(db *gorm.DB) *GormPhotoRepository {
	return &GormPhotoRepository{db: db}
}

// Add persists a newly attached photo.
func (r *GormPhotoRepository) Add(ctx context.Context, photo *order.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(photo)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing photo.
func (r *GormPhotoRepository) Update(ctx context.Context, photo *order.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(photo)
	result := r.db.WithContext(ctx).
		Model(&PhotoDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("photo", photo.ID().String())
	}

	return nil
}

// GetByOrder retrieves all photos attached to an order, oldest first.
func (r *GormPhotoRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Photo, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PhotoDTO
	err := r.db.WithContext(ctx).
		Order("uploaded_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByOrderAndType counts non-archived photos of the given type attached
// to an order.
func (r *GormPhotoRepository) CountByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	photoType order.PhotoType,
) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PhotoDTO{}).
		Where("order_id = ? AND photo_type = ? AND archived = ?", orderID.Bytes(), photoType.String(), false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetUploadedBefore retrieves non-archived photos uploaded before the
// cutoff.
func (r *GormPhotoRepository) GetUploadedBefore(ctx context.Context, cutoff time.Time) ([]*order.Photo, error) {
	var dtos []PhotoDTO
	err := r.db.WithContext(ctx).
		Where("uploaded_at < ? AND archived = ?", cutoff, false).
		Order("uploaded_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PhotoDTO) ([]*order.Photo, error) {
	photos := make([]*order.Photo, 0, len(dtos))
	for _, dto := range dtos {
		photo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	return photos, nil
}

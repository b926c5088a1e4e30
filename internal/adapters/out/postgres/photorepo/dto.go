// Package photorepo provides data transfer objects and mapping functions
// for order photo persistence.
package photorepo

import (
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// PhotoDTO represents the database structure for persisting order photos.
type PhotoDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	UploaderID uuid.UUID `gorm:"type:uuid"`
	PhotoType  string    `gorm:"type:varchar(32);not null"`
	StorageRef string    `gorm:"type:varchar(512);not null"`
	Caption    string
	UploadedAt time.Time `gorm:"index"`
	Archived   bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for photo entities.
func (PhotoDTO) TableName() string {
	return "photos"
}

// fromDomain converts a photo domain entity to its database representation.
func fromDomain(photo *order.Photo) PhotoDTO {
	return PhotoDTO{
		ID:         photo.ID().Bytes(),
		OrderID:    photo.OrderID().Bytes(),
		UploaderID: photo.UploaderID().Bytes(),
		PhotoType:  photo.Type().String(),
		StorageRef: photo.StorageRef(),
		Caption:    photo.Caption(),
		UploadedAt: photo.UploadedAt(),
		Archived:   photo.Archived(),
	}
}

// toDomain converts a database DTO to a photo domain entity.
func toDomain(dto PhotoDTO) (*order.Photo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	uploaderID, err := kernel.UUIDFromBytes(dto.UploaderID[:])
	if err != nil {
		return nil, err
	}

	photoType, err := order.PhotoTypeFromString(dto.PhotoType)
	if err != nil {
		return nil, err
	}

	return order.RestorePhoto(
		id,
		orderID,
		uploaderID,
		photoType,
		dto.StorageRef,
		dto.Caption,
		dto.UploadedAt,
		dto.Archived,
	)
}

// Package productrepo provides data transfer objects and mapping functions
// for product and material catalog persistence.
package productrepo

import (
	"time"

	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/material"
	"printmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The geometry analysis is frozen at upload time; the bounding
// box extents get their own columns so pool queries can read them without
// decoding the preview.
type ProductDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string
	OriginalFilename string `gorm:"type:varchar(255)"`
	StorageRef       string `gorm:"type:varchar(512);not null"`

	TriangleCount        int
	Width                float64
	Depth                float64
	Height               float64
	VolumeMM3            float64
	SurfaceAreaMM2       float64
	BoundingBoxVolumeMM3 float64
	Preview              []geometry.Triangle `gorm:"type:jsonb;serializer:json"`
	Truncated            bool

	CreatedAt time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// CatalogMaterialDTO represents one material offered for quoting.
type CatalogMaterialDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PricePerGram   float64   `gorm:"not null"`
	DensityGPerCM3 float64   `gorm:"not null"`
	Active         bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for catalog materials.
func (CatalogMaterialDTO) TableName() string {
	return "materials"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	analysis := aggregate.Analysis()

	return ProductDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		Title:            aggregate.Title(),
		Description:      aggregate.Description(),
		OriginalFilename: aggregate.OriginalFilename(),
		StorageRef:       aggregate.StorageRef(),

		TriangleCount:        analysis.TriangleCount,
		Width:                analysis.Width,
		Depth:                analysis.Depth,
		Height:               analysis.Height,
		VolumeMM3:            analysis.VolumeMM3,
		SurfaceAreaMM2:       analysis.SurfaceAreaMM2,
		BoundingBoxVolumeMM3: analysis.BoundingBoxVolumeMM3,
		Preview:              analysis.Preview,
		Truncated:            analysis.Truncated,

		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	analysis := geometry.Analysis{
		TriangleCount:        dto.TriangleCount,
		Width:                dto.Width,
		Depth:                dto.Depth,
		Height:               dto.Height,
		VolumeMM3:            dto.VolumeMM3,
		SurfaceAreaMM2:       dto.SurfaceAreaMM2,
		BoundingBoxVolumeMM3: dto.BoundingBoxVolumeMM3,
		Preview:              dto.Preview,
		Truncated:            dto.Truncated,
	}

	return product.RestoreProduct(
		id,
		ownerID,
		dto.Title,
		dto.Description,
		dto.OriginalFilename,
		dto.StorageRef,
		analysis,
		dto.CreatedAt,
	)
}

// materialFromDomain converts a catalog material to its database
// representation.
func materialFromDomain(aggregate *material.Material) CatalogMaterialDTO {
	return CatalogMaterialDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		PricePerGram:   aggregate.PricePerGram(),
		DensityGPerCM3: aggregate.DensityGPerCM3(),
		Active:         aggregate.Active(),
	}
}

// materialToDomain converts a database DTO to a catalog material.
func materialToDomain(dto CatalogMaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(id, dto.Name, dto.PricePerGram, dto.DensityGPerCM3, dto.Active)
}

package productrepo

import (
	"context"
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/material"
	"printmarket/internal/core/domain/model/product"
	"printmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves all products uploaded by the participant, newest
// first.
func (r *GormProductRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*product.Product, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GORM material catalog repository.
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// Add saves a new material to the catalog.
func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := materialFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a material by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CatalogMaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id.String())
		}
		return nil, err
	}

	return materialToDomain(dto)
}

// GetByName retrieves a material by its unique name.
func (r *GormMaterialRepository) GetByName(ctx context.Context, name string) (*material.Material, error) {
	var dto CatalogMaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", name)
		}
		return nil, err
	}

	return materialToDomain(dto)
}

// GetAllActive retrieves every material currently offered for quoting.
func (r *GormMaterialRepository) GetAllActive(ctx context.Context) ([]*material.Material, error) {
	var dtos []CatalogMaterialDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "active = ?", true).Error
	if err != nil {
		return nil, err
	}

	materials := make([]*material.Material, 0, len(dtos))
	for _, dto := range dtos {
		m, err := materialToDomain(dto)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	return materials, nil
}

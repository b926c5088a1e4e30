package ports

import (
	"context"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/material"
	"printmarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for uploaded models
// and their frozen geometry analysis.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByOwner retrieves all products uploaded by the given participant,
	// newest first.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*product.Product, error)
}

// MaterialRepository defines the persistence contract for the material
// catalog used to quote orders.
type MaterialRepository interface {
	// Add persists a new material to the catalog.
	Add(ctx context.Context, aggregate *material.Material) error

	// Get retrieves a material by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetByName retrieves a material by its unique name.
	GetByName(ctx context.Context, name string) (*material.Material, error)

	// GetAllActive retrieves every material currently offered for quoting.
	GetAllActive(ctx context.Context) ([]*material.Material, error)
}

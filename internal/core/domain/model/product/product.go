// Package product provides the uploaded model aggregate. A Product owns the
// geometry analysis computed once at upload time; orders reference products by
// id and never embed them.
package product

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly
	// initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrAnalysisIsRequired is returned when attempting to create a product
	// without a geometry analysis.
	ErrAnalysisIsRequired = errs.NewValueIsRequiredError("analysis")
)

// Product represents an uploaded 3D model. It is an aggregate root owning the
// file reference and the immutable geometry analysis derived at upload time.
//
// Business rules:
//   - Must have a valid UUID, owner, title and storage reference
//   - The analysis is computed exactly once and frozen
//   - The bounding box must fit the supported dimension range, which rejects
//     models too large for any supported printer at upload time
type Product struct {
	id      kernel.UUID
	ownerID kernel.UUID

	title            string
	description      string
	originalFilename string

	// storageRef is the object storage reference of the model file bytes.
	storageRef string

	analysis    geometry.Analysis
	boundingBox kernel.Dimensions

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a Product for a freshly analyzed upload.
//
// The bounding box value object is built from the analysis extents; a model
// exceeding the supported dimension range fails here rather than producing an
// order nobody can fabricate.
func NewProduct(
	id kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	originalFilename string,
	storageRef string,
	analysis *geometry.Analysis,
	now time.Time,
) (*Product, error) {
	if analysis == nil {
		return nil, ErrAnalysisIsRequired
	}

	boundingBox, err := kernel.NewDimensions(analysis.Width, analysis.Depth, analysis.Height)
	if err != nil {
		return nil, err
	}

	product := &Product{
		description:      description,
		originalFilename: originalFilename,
		analysis:         *analysis,
		boundingBox:      boundingBox,
		createdAt:        now,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setOwnerID(ownerID),
		product.setTitle(title),
		product.setStorageRef(storageRef),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(
	id kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	originalFilename string,
	storageRef string,
	analysis geometry.Analysis,
	createdAt time.Time,
) (*Product, error) {
	product, err := NewProduct(id, ownerID, title, description, originalFilename, storageRef, &analysis, createdAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Validate ensures the product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the uploading customer's identifier.
func (p *Product) OwnerID() kernel.UUID {
	return p.ownerID
}

// Title returns the display title.
func (p *Product) Title() string {
	return p.title
}

// Description returns the optional free-form description.
func (p *Product) Description() string {
	return p.description
}

// OriginalFilename returns the filename of the uploaded file.
func (p *Product) OriginalFilename() string {
	return p.originalFilename
}

// StorageRef returns the object storage reference of the model bytes.
func (p *Product) StorageRef() string {
	return p.storageRef
}

// Analysis returns the frozen geometry analysis.
func (p *Product) Analysis() geometry.Analysis {
	return p.analysis
}

// BoundingBox returns the model's bounding box as a dimensions value object.
func (p *Product) BoundingBox() kernel.Dimensions {
	return p.boundingBox
}

// CreatedAt returns the upload timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	p.ownerID = ownerID
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Product) setStorageRef(storageRef string) error {
	if storageRef == "" {
		return errs.NewValueIsRequiredError("storageRef")
	}
	p.storageRef = storageRef
	return nil
}

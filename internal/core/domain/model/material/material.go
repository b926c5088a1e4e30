// Package material provides the print material catalog entry.
package material

import (
	"errors"
	"fmt"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var (
	// ErrMaterialIsNotConstructed is returned when using an improperly
	// initialized Material.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")
)

// Material is a catalog entry describing a print material: its price per gram
// drives the pricing engine, its density drives the weight estimate.
type Material struct {
	id             kernel.UUID
	name           string
	pricePerGram   float64
	densityGPerCM3 float64
	active         bool

	guard guard.ConstructorGuard
}

// NewMaterial creates an active Material catalog entry.
//
// Parameters:
//   - id: unique identifier
//   - name: display name, must be non-empty
//   - pricePerGram: material cost per gram, must be non-negative
//   - densityGPerCM3: physical density, must be positive
func NewMaterial(id kernel.UUID, name string, pricePerGram float64, densityGPerCM3 float64) (*Material, error) {
	m := &Material{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPricePerGram(pricePerGram),
		m.setDensity(densityGPerCM3),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a Material from persisted state.
func RestoreMaterial(id kernel.UUID, name string, pricePerGram float64, densityGPerCM3 float64, active bool) (*Material, error) {
	m, err := NewMaterial(id, name, pricePerGram, densityGPerCM3)
	if err != nil {
		return nil, err
	}
	m.active = active
	return m, nil
}

// Validate ensures the material was created through its constructor.
func (m *Material) Validate() error {
	if m == nil {
		return ErrMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialIsNotConstructed)
}

// ID returns the material's unique identifier.
func (m *Material) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Material) Name() string {
	return m.name
}

// PricePerGram returns material cost per gram.
func (m *Material) PricePerGram() float64 {
	return m.pricePerGram
}

// DensityGPerCM3 returns the physical density in g/cm³.
func (m *Material) DensityGPerCM3() float64 {
	return m.densityGPerCM3
}

// Active reports whether the material can be quoted and ordered.
func (m *Material) Active() bool {
	return m.active
}

// Deactivate removes the material from the orderable catalog without touching
// existing orders that reference it.
func (m *Material) Deactivate() {
	m.active = false
}

func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Material) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Material) setPricePerGram(pricePerGram float64) error {
	if pricePerGram < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerGram",
			fmt.Errorf("%f is negative", pricePerGram))
	}
	m.pricePerGram = pricePerGram
	return nil
}

func (m *Material) setDensity(densityGPerCM3 float64) error {
	if densityGPerCM3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("densityGPerCM3",
			fmt.Errorf("%f is not greater than 0", densityGPerCM3))
	}
	m.densityGPerCM3 = densityGPerCM3
	return nil
}

package participant

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var (
	// ErrPrinterIsNotConstructed indicates that the Printer was not properly
	// initialized through the NewPrinter constructor function.
	ErrPrinterIsNotConstructed = errors.New("Printer must be created via NewPrinter constructor")
)

// Printer is a fabrication machine declared by a producer. Its build volume
// bounds the size of models the producer can take on.
//
// Key business rules:
//   - Must be constructed through NewPrinter
//   - The build volume is immutable after construction
//   - A model fits when its bounding box fits axis-aligned into the build volume
type Printer struct {
	id          kernel.UUID
	name        string
	buildVolume kernel.Dimensions
	guard       guard.ConstructorGuard
}

// NewPrinter creates a Printer with the given display name and build volume.
//
// Parameters:
//   - id: unique identifier for the printer
//   - name: human-readable model name, must be non-empty
//   - buildVolume: the maximum printable extents in millimeters
//
// Returns:
//   - *Printer: a fully initialized printer
//   - error: validation error if any parameter is invalid
func NewPrinter(id kernel.UUID, name string, buildVolume kernel.Dimensions) (*Printer, error) {
	printer := &Printer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		printer.setID(id),
		printer.setName(name),
		printer.setBuildVolume(buildVolume),
	); err != nil {
		return nil, err
	}

	return printer, nil
}

// RestorePrinter reconstructs a Printer from persisted state.
func RestorePrinter(id kernel.UUID, name string, buildVolume kernel.Dimensions) (*Printer, error) {
	return NewPrinter(id, name, buildVolume)
}

// Validate ensures the printer was created through its constructor.
func (p *Printer) Validate() error {
	if p == nil {
		return ErrPrinterIsNotConstructed
	}
	return p.guard.Validate(ErrPrinterIsNotConstructed)
}

// ID returns the printer's unique identifier.
func (p *Printer) ID() kernel.UUID {
	return p.id
}

// Name returns the printer's display name.
func (p *Printer) Name() string {
	return p.name
}

// BuildVolume returns the maximum printable extents.
func (p *Printer) BuildVolume() kernel.Dimensions {
	return p.buildVolume
}

// CanFit reports whether a model with the given bounding box fits on this
// printer.
func (p *Printer) CanFit(boundingBox kernel.Dimensions) bool {
	return boundingBox.FitsWithin(p.buildVolume)
}

func (p *Printer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Printer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Printer) setBuildVolume(buildVolume kernel.Dimensions) error {
	if err := buildVolume.Validate(); err != nil {
		return err
	}
	p.buildVolume = buildVolume
	return nil
}

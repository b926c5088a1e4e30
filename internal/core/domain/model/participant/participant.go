package participant

import (
	"errors"
	"slices"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

// Domain errors for participant operations.
var (
	// ErrEmailIsRequired is returned when attempting to create a participant without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrNameIsRequired is returned when attempting to create a participant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrParticipantIsNotConstructed is returned when using an improperly initialized Participant.
	ErrParticipantIsNotConstructed = errors.New("Participant must be created via NewParticipant constructor")
)

// Participant represents a marketplace user: a customer, a producer, or a
// platform admin. It is an aggregate root managing identity, the producer's
// fabrication capabilities and fulfillment counters.
//
// Business rules:
//   - Must have a valid UUID, non-empty email and name, and a valid role
//   - Supported materials and printers only matter for producers
//   - A producer with no declared printers accepts models of any size
//   - Fulfillment counters only move forward, one confirm at a time
type Participant struct {
	id    kernel.UUID
	email string
	name  string
	role  Role

	// materialsSupported holds the material names a producer fabricates with.
	materialsSupported []string

	// printers are the producer's declared machines with build volume limits.
	printers []*Printer

	completedOrders int
	totalOrders     int

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewParticipant creates a new Participant with the specified identity.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - email: contact email, must be non-empty
//   - name: display name, must be non-empty
//   - role: marketplace role, must be valid
//   - now: creation timestamp
//
// Returns:
//   - *Participant: a fully initialized participant
//   - error: validation error if any parameter is invalid (aggregated)
func NewParticipant(id kernel.UUID, email string, name string, role Role, now time.Time) (*Participant, error) {
	participant := &Participant{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		participant.setID(id),
		participant.setEmail(email),
		participant.setName(name),
		participant.setRole(role),
	); err != nil {
		return nil, err
	}

	return participant, nil
}

// RestoreParticipant reconstructs a Participant aggregate from persistent
// storage, including producer capabilities and counters.
func RestoreParticipant(
	id kernel.UUID,
	email string,
	name string,
	role Role,
	materialsSupported []string,
	printers []*Printer,
	completedOrders int,
	totalOrders int,
	createdAt time.Time,
) (*Participant, error) {
	participant, err := NewParticipant(id, email, name, role, createdAt)
	if err != nil {
		return nil, err
	}

	participant.materialsSupported = slices.Clone(materialsSupported)
	participant.printers = slices.Clone(printers)
	participant.completedOrders = completedOrders
	participant.totalOrders = totalOrders

	return participant, nil
}

// Validate ensures the participant was created through its constructor.
func (p *Participant) Validate() error {
	if p == nil {
		return ErrParticipantIsNotConstructed
	}
	return p.guard.Validate(ErrParticipantIsNotConstructed)
}

// IsEqual compares two participants by their unique identifiers.
func (p *Participant) IsEqual(other *Participant) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the participant's unique identifier.
func (p *Participant) ID() kernel.UUID {
	return p.id
}

// Email returns the participant's contact email.
func (p *Participant) Email() string {
	return p.email
}

// Name returns the participant's display name.
func (p *Participant) Name() string {
	return p.name
}

// Role returns the participant's marketplace role.
func (p *Participant) Role() Role {
	return p.role
}

// IsProducer reports whether the participant fulfills orders.
func (p *Participant) IsProducer() bool {
	return p.role == RoleProducer
}

// IsAdmin reports whether the participant operates the platform.
func (p *Participant) IsAdmin() bool {
	return p.role == RoleAdmin
}

// MaterialsSupported returns a copy of the producer's supported material names.
func (p *Participant) MaterialsSupported() []string {
	return slices.Clone(p.materialsSupported)
}

// Printers returns a copy of the producer's declared printer list.
func (p *Participant) Printers() []*Printer {
	return slices.Clone(p.printers)
}

// CompletedOrders returns how many orders the producer has had confirmed.
func (p *Participant) CompletedOrders() int {
	return p.completedOrders
}

// TotalOrders returns how many orders the producer has been credited for.
func (p *Participant) TotalOrders() int {
	return p.totalOrders
}

// CreatedAt returns the registration timestamp.
func (p *Participant) CreatedAt() time.Time {
	return p.createdAt
}

// SupportMaterial declares that the producer fabricates with the given
// material. Duplicate declarations are ignored.
func (p *Participant) SupportMaterial(materialName string) error {
	if materialName == "" {
		return errs.NewValueIsRequiredError("materialName")
	}
	if slices.Contains(p.materialsSupported, materialName) {
		return nil
	}
	p.materialsSupported = append(p.materialsSupported, materialName)
	return nil
}

// SupportsMaterial reports whether the producer fabricates with the given
// material.
func (p *Participant) SupportsMaterial(materialName string) bool {
	return slices.Contains(p.materialsSupported, materialName)
}

// AddPrinter declares a new printer for the producer.
func (p *Participant) AddPrinter(name string, buildVolume kernel.Dimensions) error {
	printer, err := NewPrinter(kernel.NewUUID(), name, buildVolume)
	if err != nil {
		return err
	}
	p.printers = append(p.printers, printer)
	return nil
}

// CanFitModel reports whether a model with the given bounding box fits on at
// least one of the producer's printers. A producer with no declared printers
// is assumed to accept any size.
func (p *Participant) CanFitModel(boundingBox kernel.Dimensions) bool {
	if len(p.printers) == 0 {
		return true
	}
	for _, printer := range p.printers {
		if printer.CanFit(boundingBox) {
			return true
		}
	}
	return false
}

// RecordConfirmedOrder moves the fulfillment counters forward after an order
// of this producer was confirmed.
func (p *Participant) RecordConfirmedOrder() {
	p.completedOrders++
	p.totalOrders++
}

func (p *Participant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Participant) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}

func (p *Participant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Participant) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

// Package participantrepo provides data transfer objects and mapping
// functions for participant persistence. This package implements the
// repository pattern for the participant domain aggregate, handling the
// conversion between domain entities and database representations.
package participantrepo

import (
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"

	"github.com/google/uuid"
)

// ParticipantDTO represents the database structure for persisting
// participant aggregates. Producer capabilities are stored in child tables
// with proper foreign key relationships.
type ParticipantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(32);not null;index"`
	CompletedOrders int       `gorm:"type:int;not null"`
	TotalOrders     int       `gorm:"type:int;not null"`
	CreatedAt       time.Time

	Materials []MaterialDTO `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	Printers  []PrinterDTO  `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for participant entities.
func (ParticipantDTO) TableName() string {
	return "participants"
}

// MaterialDTO represents one material a producer supports.
type MaterialDTO struct {
	ParticipantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialName  string    `gorm:"type:varchar(255);primaryKey"`
}

// TableName specifies the database table name for supported materials.
func (MaterialDTO) TableName() string {
	return "participant_materials"
}

// PrinterDTO represents one registered printer with its build volume in
// millimeters.
type PrinterDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	BuildX        float64   `gorm:"not null"`
	BuildY        float64   `gorm:"not null"`
	BuildZ        float64   `gorm:"not null"`
}

// TableName specifies the database table name for printer entities.
func (PrinterDTO) TableName() string {
	return "printers"
}

// fromDomain converts a participant domain aggregate to its database
// representation, including supported materials and printers.
func fromDomain(aggregate *participant.Participant) ParticipantDTO {
	participantID := aggregate.ID().Bytes()

	materials := make([]MaterialDTO, 0, len(aggregate.MaterialsSupported()))
	for _, name := range aggregate.MaterialsSupported() {
		materials = append(materials, MaterialDTO{
			ParticipantID: participantID,
			MaterialName:  name,
		})
	}

	printers := make([]PrinterDTO, 0, len(aggregate.Printers()))
	for _, printer := range aggregate.Printers() {
		volume := printer.BuildVolume()
		printers = append(printers, PrinterDTO{
			ID:            printer.ID().Bytes(),
			ParticipantID: participantID,
			Name:          printer.Name(),
			BuildX:        volume.X(),
			BuildY:        volume.Y(),
			BuildZ:        volume.Z(),
		})
	}

	return ParticipantDTO{
		ID:              participantID,
		Email:           aggregate.Email(),
		Name:            aggregate.Name(),
		Role:            aggregate.Role().String(),
		CompletedOrders: aggregate.CompletedOrders(),
		TotalOrders:     aggregate.TotalOrders(),
		CreatedAt:       aggregate.CreatedAt(),
		Materials:       materials,
		Printers:        printers,
	}
}

// toDomain converts a database DTO to a participant domain aggregate.
func toDomain(dto ParticipantDTO) (*participant.Participant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := participant.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	materials := make([]string, 0, len(dto.Materials))
	for _, m := range dto.Materials {
		materials = append(materials, m.MaterialName)
	}

	printers := make([]*participant.Printer, 0, len(dto.Printers))
	for _, p := range dto.Printers {
		printer, printerErr := printerToDomain(p)
		if printerErr != nil {
			return nil, printerErr
		}
		printers = append(printers, printer)
	}

	return participant.RestoreParticipant(
		id,
		dto.Email,
		dto.Name,
		role,
		materials,
		printers,
		dto.CompletedOrders,
		dto.TotalOrders,
		dto.CreatedAt,
	)
}

// printerToDomain converts a printer DTO to its domain entity.
func printerToDomain(dto PrinterDTO) (*participant.Printer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buildVolume, err := kernel.NewDimensions(dto.BuildX, dto.BuildY, dto.BuildZ)
	if err != nil {
		return nil, err
	}

	return participant.RestorePrinter(id, dto.Name, buildVolume)
}

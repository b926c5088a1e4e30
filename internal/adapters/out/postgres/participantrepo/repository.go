package participantrepo

import (
	"context"
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolationCode is the postgres error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

// GormParticipantRepository implements ParticipantRepository using GORM.
type GormParticipantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParticipantRepository creates a new GORM participant repository.
func NewGormParticipantRepository(db *gorm.DB, tracker aggregateTracker) *GormParticipantRepository {
	return &GormParticipantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new participant to the database. A duplicate email surfaces as
// a value validation error instead of a raw driver error.
func (r *GormParticipantRepository) Add(ctx context.Context, aggregate *participant.Participant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing participant to the database, replacing its
// supported materials and printers with the aggregate's current state.
func (r *GormParticipantRepository) Update(ctx context.Context, aggregate *participant.Participant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Child rows are replaced wholesale on update.
	err := r.db.WithContext(ctx).
		Delete(&MaterialDTO{}, "participant_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Delete(&PrinterDTO{}, "participant_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("participant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a participant by ID with printers and materials loaded.
func (r *GormParticipantRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Printers").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("participant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a participant by its unique email.
func (r *GormParticipantRepository) GetByEmail(ctx context.Context, email string) (*participant.Participant, error) {
	var dto ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Printers").
		First(&dto, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("participant", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllProducers retrieves every producer with capabilities loaded. Used to
// build the matching pool for new orders.
func (r *GormParticipantRepository) GetAllProducers(ctx context.Context) ([]*participant.Participant, error) {
	var dtos []ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Printers").
		Find(&dtos, "role = ?", participant.RoleProducer.String()).Error
	if err != nil {
		return nil, err
	}

	producers := make([]*participant.Participant, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		producers = append(producers, p)
	}

	return producers, nil
}

// GetAllAdmins retrieves every administrator. Used to fan out dispute
// notifications.
func (r *GormParticipantRepository) GetAllAdmins(ctx context.Context) ([]*participant.Participant, error) {
	var dtos []ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Printers").
		Find(&dtos, "role = ?", participant.RoleAdmin.String()).Error
	if err != nil {
		return nil, err
	}

	admins := make([]*participant.Participant, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		admins = append(admins, p)
	}

	return admins, nil
}

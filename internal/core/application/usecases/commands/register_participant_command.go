package commands

import (
	"errors"
	"strings"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var (
	ErrRegisterParticipantCommandIsNotConstructed = errors.New(
		"RegisterParticipantCommand must be created via NewRegisterParticipantCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterParticipantCommand represents a sign-in: the participant is
// created on first contact and looked up by email afterwards.
type RegisterParticipantCommand struct { //nolint:recvcheck //using for validation
	participantID kernel.UUID
	email         string
	name          string
	role          participant.Role

	guard guard.ConstructorGuard
}

// NewRegisterParticipantCommand creates a command to register or look up a
// participant by email. The name defaults to the email's local part when
// empty.
func NewRegisterParticipantCommand(
	participantID kernel.UUID,
	email string,
	name string,
	role participant.Role,
) (RegisterParticipantCommand, error) {
	registerCommand := RegisterParticipantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setParticipantID(participantID),
		registerCommand.setEmail(email),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterParticipantCommand{}, err
	}

	registerCommand.setName(name)

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParticipantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParticipantCommandIsNotConstructed)
}

// ParticipantID returns the id assigned if the participant is new.
func (c RegisterParticipantCommand) ParticipantID() kernel.UUID {
	return c.participantID
}

// Email returns the normalized email address.
func (c RegisterParticipantCommand) Email() string {
	return c.email
}

// Name returns the display name.
func (c RegisterParticipantCommand) Name() string {
	return c.name
}

// Role returns the role requested for a first-time registration.
func (c RegisterParticipantCommand) Role() participant.Role {
	return c.role
}

func (c *RegisterParticipantCommand) setParticipantID(participantID kernel.UUID) error {
	if err := participantID.Validate(); err != nil {
		return err
	}

	c.participantID = participantID
	return nil
}

func (c *RegisterParticipantCommand) setEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ErrEmailIsRequired
	}

	c.email = normalized
	return nil
}

func (c *RegisterParticipantCommand) setName(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = strings.SplitN(c.email, "@", 2)[0]
	}

	c.name = trimmed
}

func (c *RegisterParticipantCommand) setRole(role participant.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	// Self-registration is limited to marketplace roles. Admin accounts are
	// provisioned out of band.
	if role == participant.RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("admin accounts cannot be self-registered"))
	}

	c.role = role
	return nil
}

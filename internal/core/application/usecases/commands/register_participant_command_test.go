package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"
)

func Test_NewRegisterParticipantCommand(t *testing.T) {
	validID := kernel.NewUUID()

	tests := []struct {
		name          string
		participantID kernel.UUID
		email         string
		displayName   string
		role          participant.Role
		wantErr       error
		wantEmail     string
		wantName      string
	}{
		{
			name:          "Valid parameters, success",
			participantID: validID,
			email:         "maker@example.com",
			displayName:   "Maker",
			role:          participant.RoleProducer,
			wantEmail:     "maker@example.com",
			wantName:      "Maker",
		},
		{
			name:          "Email normalized to lower case",
			participantID: validID,
			email:         "  Buyer@Example.COM ",
			displayName:   "Buyer",
			role:          participant.RoleCustomer,
			wantEmail:     "buyer@example.com",
			wantName:      "Buyer",
		},
		{
			name:          "Empty name defaults to email local part",
			participantID: validID,
			email:         "someone@example.com",
			displayName:   "",
			role:          participant.RoleCustomer,
			wantEmail:     "someone@example.com",
			wantName:      "someone",
		},
		{
			name:          "Empty participant id, error",
			participantID: kernel.UUID{},
			email:         "maker@example.com",
			role:          participant.RoleProducer,
			wantErr:       kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:          "Empty email, error",
			participantID: validID,
			email:         "   ",
			role:          participant.RoleCustomer,
			wantErr:       commands.ErrEmailIsRequired,
		},
		{
			name:          "Admin role, error",
			participantID: validID,
			email:         "boss@example.com",
			displayName:   "Boss",
			role:          participant.RoleAdmin,
			wantErr:       errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewRegisterParticipantCommand(
				tt.participantID, tt.email, tt.displayName, tt.role,
			)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
			assert.Equal(t, tt.participantID, cmd.ParticipantID())
			assert.Equal(t, tt.wantEmail, cmd.Email())
			assert.Equal(t, tt.wantName, cmd.Name())
			assert.Equal(t, tt.role, cmd.Role())
		})
	}
}

func TestRegisterParticipantCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RegisterParticipantCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterParticipantCommandIsNotConstructed)
}

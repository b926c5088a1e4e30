package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
)

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type participantResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token       string              `json:"token"`
	Participant participantResponse `json:"participant"`
	Created     bool                `json:"created"`
}

// Login handles POST /api/v1/auth/login. Unknown emails register a new
// participant; known emails sign in as the existing one.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	role := participant.RoleCustomer
	if request.Role != "" {
		parsed, err := participant.RoleFromString(request.Role)
		if err != nil {
			return writeBadRequest(ctx, "unknown role: "+request.Role)
		}
		role = parsed
	}

	cmd, err := commands.NewRegisterParticipantCommand(kernel.NewUUID(), request.Email, request.Name, role)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	resolved, created, err := s.handlers.RegisterParticipant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.IssueToken(ctx.Request().Context(), resolved)
	if err != nil {
		return writeError(ctx, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return ctx.JSON(status, loginResponse{
		Token: token,
		Participant: participantResponse{
			ID:    resolved.ID().String(),
			Email: resolved.Email(),
			Name:  resolved.Name(),
			Role:  resolved.Role().String(),
		},
		Created: created,
	})
}

// Logout handles POST /api/v1/auth/logout by revoking the current session.
func (s *Server) Logout(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	if err := s.tokens.Revoke(ctx.Request().Context(), actor.TokenID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

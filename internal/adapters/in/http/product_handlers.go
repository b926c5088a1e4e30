package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
)

type uploadModelResponse struct {
	ProductID string `json:"product_id"`
}

// UploadModel handles POST /api/v1/models. The model file is a multipart
// part named "file"; title and description are form fields.
func (s *Server) UploadModel(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return writeBadRequest(ctx, "model file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeBadRequest(ctx, "model file is not readable")
	}
	defer file.Close()

	productID := kernel.NewUUID()

	cmd, err := commands.NewUploadModelCommand(
		productID,
		actor.ParticipantID,
		ctx.FormValue("title"),
		ctx.FormValue("description"),
		fileHeader.Filename,
		file,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.UploadModel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, uploadModelResponse{ProductID: productID.String()})
}

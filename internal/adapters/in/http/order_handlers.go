package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
)

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

type createOrderRequest struct {
	ProductID       string  `json:"product_id"`
	MaterialName    string  `json:"material_name"`
	InfillDensity   float64 `json:"infill_density"`
	SupportRequired bool    `json:"support_required"`
	Color           string  `json:"color"`
	Notes           string  `json:"notes"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return writeBadRequest(ctx, "invalid product_id")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor.ParticipantID,
		productID,
		request.MaterialName,
		request.InfillDensity,
		request.SupportRequired,
		request.Color,
		request.Notes,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

type acceptOrderRequest struct {
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request acceptOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor.ParticipantID, request.EstimatedDeliveryAt)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request reasonRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actor.ParticipantID, request.Reason)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request reasonRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ParticipantID, request.Reason)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type paymentCallbackRequest struct {
	OrderID          string `json:"order_id"`
	PaymentReference string `json:"payment_reference"`
}

// PaymentCallback handles POST /api/v1/payments/callback, the provider's
// notification that an order's payment settled.
func (s *Server) PaymentCallback(ctx echo.Context) error {
	var request paymentCallbackRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid order_id")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, request.PaymentReference)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type shippingInfoRequest struct {
	Address string  `json:"address"`
	Method  string  `json:"method"`
	Fee     float64 `json:"fee"`
}

// SetShippingInfo handles POST /api/v1/orders/:id/shipping.
func (s *Server) SetShippingInfo(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request shippingInfoRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetShippingInfoCommand(
		orderID, actor.ParticipantID, request.Address, request.Method, request.Fee,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.SetShippingInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type trackingRequest struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

// SetTracking handles POST /api/v1/orders/:id/tracking.
func (s *Server) SetTracking(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request trackingRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetTrackingCommand(
		orderID, actor.ParticipantID, request.TrackingNumber, request.Carrier,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.SetTracking.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type attachPhotoResponse struct {
	PhotoID string `json:"photo_id"`
}

// AttachPhoto handles POST /api/v1/orders/:id/photos. The photo is a
// multipart part named "file"; photo_type and caption are form fields.
func (s *Server) AttachPhoto(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	photoType, err := order.PhotoTypeFromString(ctx.FormValue("photo_type"))
	if err != nil {
		return writeBadRequest(ctx, "unknown photo_type")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return writeBadRequest(ctx, "photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeBadRequest(ctx, "photo file is not readable")
	}
	defer file.Close()

	photoID := kernel.NewUUID()

	cmd, err := commands.NewAttachPhotoCommand(
		photoID, orderID, actor.ParticipantID, photoType, ctx.FormValue("caption"), file,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.AttachPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, attachPhotoResponse{PhotoID: photoID.String()})
}

// CompleteProduction handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteProduction(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteProductionCommand(orderID, actor.ParticipantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.CompleteProduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type confirmDeliveryRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request confirmDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, actor.ParticipantID, request.Rating, request.Review)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenDispute handles POST /api/v1/orders/:id/dispute.
func (s *Server) OpenDispute(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request reasonRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewOpenDisputeCommand(orderID, actor.ParticipantID, request.Reason)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.OpenDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type resolveDisputeRequest struct {
	Resolution   string  `json:"resolution"`
	RefundAmount float64 `json:"refund_amount"`
	Reason       string  `json:"reason"`
}

// ResolveDispute handles POST /api/v1/orders/:id/resolve.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request resolveDisputeRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	resolution, err := order.ResolutionFromString(request.Resolution)
	if err != nil {
		return writeBadRequest(ctx, "unknown resolution")
	}

	cmd, err := commands.NewResolveDisputeCommand(
		orderID, actor.ParticipantID, resolution, request.RefundAmount, request.Reason,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.handlers.ResolveDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

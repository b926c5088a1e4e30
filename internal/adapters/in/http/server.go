// Package http is the inbound adapter exposing the marketplace over a REST
// API. Handlers translate between JSON requests and application commands and
// queries; authorization decisions stay in the application layer.
package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/application/usecases/queries"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/ports"
)

// TokenManager issues, verifies and revokes session tokens.
type TokenManager interface {
	ports.TokenVerifier

	IssueToken(ctx context.Context, actor *participant.Participant) (string, error)
	Revoke(ctx context.Context, tokenID string) error
}

// Handlers bundles every command and query handler the server routes to.
type Handlers struct {
	RegisterParticipant commands.RegisterParticipantCommandHandler
	UploadModel         commands.UploadModelCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	AcceptOrder         commands.AcceptOrderCommandHandler
	RejectOrder         commands.RejectOrderCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	MarkOrderPaid       commands.MarkOrderPaidCommandHandler
	SetShippingInfo     commands.SetShippingInfoCommandHandler
	SetTracking         commands.SetTrackingCommandHandler
	AttachPhoto         commands.AttachPhotoCommandHandler
	CompleteProduction  commands.CompleteProductionCommandHandler
	ConfirmDelivery     commands.ConfirmDeliveryCommandHandler
	OpenDispute         commands.OpenDisputeCommandHandler
	ResolveDispute      commands.ResolveDisputeCommandHandler
	GetProducerPool     queries.GetProducerPoolQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetMarketplaceStats queries.GetMarketplaceStatsQueryHandler
}

// Server wires HTTP routes to the application layer.
type Server struct {
	handlers Handlers
	tokens   TokenManager
}

// NewServer creates an HTTP server over the given handlers and token
// manager.
func NewServer(handlers Handlers, tokens TokenManager) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
	}
}

// MaxUploadSize caps request bodies so a hostile model upload cannot buffer
// an unbounded stream into memory. The geometry analyzer caps its own work
// independently through the triangle limit.
const MaxUploadSize = "64M"

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.BodyLimit(MaxUploadSize))

	// Login and the payment provider callback carry no bearer token.
	api.POST("/auth/login", s.Login)
	api.POST("/payments/callback", s.PaymentCallback)

	authed := api.Group("", AuthMiddleware(s.tokens))
	authed.POST("/auth/logout", s.Logout)

	authed.POST("/models", s.UploadModel)

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/pool", s.GetProducerPool)
	authed.GET("/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/accept", s.AcceptOrder)
	authed.POST("/orders/:id/reject", s.RejectOrder)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.POST("/orders/:id/shipping", s.SetShippingInfo)
	authed.POST("/orders/:id/tracking", s.SetTracking)
	authed.POST("/orders/:id/photos", s.AttachPhoto)
	authed.POST("/orders/:id/complete", s.CompleteProduction)
	authed.POST("/orders/:id/confirm", s.ConfirmDelivery)
	authed.POST("/orders/:id/dispute", s.OpenDispute)
	authed.POST("/orders/:id/resolve", s.ResolveDispute)

	authed.GET("/admin/stats", s.GetMarketplaceStats)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"printmarket/internal/core/application/usecases/queries"
)

type poolOrderView struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	ProductID       string    `json:"product_id"`
	ProductTitle    string    `json:"product_title"`
	MaterialName    string    `json:"material_name"`
	Color           string    `json:"color"`
	InfillDensity   float64   `json:"infill_density"`
	SupportRequired bool      `json:"support_required"`
	FinalPrice      float64   `json:"final_price"`
	BoundingBoxMM   []float64 `json:"bounding_box_mm"`
	CreatedAt       time.Time `json:"created_at"`
}

// GetProducerPool handles GET /api/v1/orders/pool.
func (s *Server) GetProducerPool(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetProducerPoolQuery(actor.ParticipantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	pool, err := s.handlers.GetProducerPool.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]poolOrderView, len(pool))
	for i, entry := range pool {
		response[i] = poolOrderView{
			ID:              entry.ID.String(),
			CustomerID:      entry.CustomerID.String(),
			ProductID:       entry.ProductID.String(),
			ProductTitle:    entry.ProductTitle,
			MaterialName:    entry.MaterialName,
			Color:           entry.Color,
			InfillDensity:   entry.InfillDensity,
			SupportRequired: entry.SupportRequired,
			FinalPrice:      entry.FinalPrice,
			BoundingBoxMM:   []float64{entry.BoundingBox.X(), entry.BoundingBox.Y(), entry.BoundingBox.Z()},
			CreatedAt:       entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type historyEntryView struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type photoEntryView struct {
	ID         string    `json:"id"`
	UploaderID string    `json:"uploader_id"`
	Type       string    `json:"type"`
	StorageRef string    `json:"storage_ref"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	Archived   bool      `json:"archived"`
}

type orderView struct {
	ID                  string             `json:"id"`
	CustomerID          string             `json:"customer_id"`
	ProducerID          string             `json:"producer_id,omitempty"`
	ProductID           string             `json:"product_id"`
	MaterialName        string             `json:"material_name"`
	Color               string             `json:"color"`
	InfillDensity       float64            `json:"infill_density"`
	SupportRequired     bool               `json:"support_required"`
	Notes               string             `json:"notes,omitempty"`
	Status              string             `json:"status"`
	PaymentStatus       string             `json:"payment_status"`
	StatusReason        string             `json:"status_reason,omitempty"`
	PaymentLinkURL      string             `json:"payment_link_url,omitempty"`
	EstimatedDeliveryAt *time.Time         `json:"estimated_delivery_at,omitempty"`
	TrackingNumber      string             `json:"tracking_number,omitempty"`
	Carrier             string             `json:"carrier,omitempty"`
	Rating              *int               `json:"rating,omitempty"`
	Review              string             `json:"review,omitempty"`
	FinalPrice          float64            `json:"final_price"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	History             []historyEntryView `json:"history"`
	Photos              []photoEntryView   `json:"photos"`
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor.ParticipantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	view := orderView{
		ID:                  result.ID.String(),
		CustomerID:          result.CustomerID.String(),
		ProductID:           result.ProductID.String(),
		MaterialName:        result.MaterialName,
		Color:               result.Color,
		InfillDensity:       result.InfillDensity,
		SupportRequired:     result.SupportRequired,
		Notes:               result.Notes,
		Status:              result.Status,
		PaymentStatus:       result.PaymentStatus,
		StatusReason:        result.StatusReason,
		PaymentLinkURL:      result.PaymentLinkURL,
		EstimatedDeliveryAt: result.EstimatedDeliveryAt,
		TrackingNumber:      result.TrackingNumber,
		Carrier:             result.Carrier,
		Rating:              result.Rating,
		Review:              result.Review,
		FinalPrice:          result.FinalPrice,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
		History:             make([]historyEntryView, len(result.History)),
		Photos:              make([]photoEntryView, len(result.Photos)),
	}
	if result.ProducerID != nil {
		view.ProducerID = result.ProducerID.String()
	}

	for i, entry := range result.History {
		view.History[i] = historyEntryView{
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			ActorID:    entry.ActorID.String(),
			Reason:     entry.Reason,
			CreatedAt:  entry.CreatedAt,
		}
	}

	for i, entry := range result.Photos {
		view.Photos[i] = photoEntryView{
			ID:         entry.ID.String(),
			UploaderID: entry.UploaderID.String(),
			Type:       entry.Type,
			StorageRef: entry.StorageRef,
			Caption:    entry.Caption,
			UploadedAt: entry.UploadedAt,
			Archived:   entry.Archived,
		}
	}

	return ctx.JSON(http.StatusOK, view)
}

type producerStatsView struct {
	ProducerID      string `json:"producer_id"`
	Name            string `json:"name"`
	CompletedOrders int    `json:"completed_orders"`
	TotalOrders     int    `json:"total_orders"`
}

type materialUsageView struct {
	MaterialName string `json:"material_name"`
	OrderCount   int    `json:"order_count"`
}

type statsView struct {
	OrdersByStatus  map[string]int      `json:"orders_by_status"`
	PaidRevenue     float64             `json:"paid_revenue"`
	CommissionTotal float64             `json:"commission_total"`
	OpenDisputes    int                 `json:"open_disputes"`
	TopProducers    []producerStatsView `json:"top_producers"`
	MaterialUsage   []materialUsageView `json:"material_usage"`
}

// GetMarketplaceStats handles GET /api/v1/admin/stats.
func (s *Server) GetMarketplaceStats(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetMarketplaceStatsQuery(actor.ParticipantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	stats, err := s.handlers.GetMarketplaceStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	view := statsView{
		OrdersByStatus:  stats.OrdersByStatus,
		PaidRevenue:     stats.PaidRevenue,
		CommissionTotal: stats.CommissionTotal,
		OpenDisputes:    stats.OpenDisputes,
		TopProducers:    make([]producerStatsView, len(stats.TopProducers)),
		MaterialUsage:   make([]materialUsageView, len(stats.MaterialUsage)),
	}

	for i, producer := range stats.TopProducers {
		view.TopProducers[i] = producerStatsView{
			ProducerID:      producer.ProducerID.String(),
			Name:            producer.Name,
			CompletedOrders: producer.CompletedOrders,
			TotalOrders:     producer.TotalOrders,
		}
	}

	for i, usage := range stats.MaterialUsage {
		view.MaterialUsage[i] = materialUsageView{
			MaterialName: usage.MaterialName,
			OrderCount:   usage.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, view)
}

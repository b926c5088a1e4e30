package queries

import (
	"context"
	"database/sql"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const topProducersLimit = 5

// GetMarketplaceStatsQueryHandler aggregates platform-wide numbers for the
// admin dashboard.
type GetMarketplaceStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetMarketplaceStatsQueryHandler creates a handler for marketplace stats.
func NewGetMarketplaceStatsQueryHandler(db *gorm.DB) GetMarketplaceStatsQueryHandler {
	return GetMarketplaceStatsQueryHandler{db: db}
}

// Handle verifies the caller is an admin and collects the aggregates.
func (h GetMarketplaceStatsQueryHandler) Handle(
	ctx context.Context,
	query GetMarketplaceStatsQuery,
) (GetMarketplaceStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	if err := h.checkAdmin(ctx, query.AdminID()); err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	var resp GetMarketplaceStatsQueryResponse
	var err error

	resp.OrdersByStatus, err = h.loadStatusDistribution(ctx)
	if err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	resp.PaidRevenue, resp.CommissionTotal, err = h.loadRevenue(ctx)
	if err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	resp.OpenDisputes = resp.OrdersByStatus[order.DisputeOpen.String()]

	resp.TopProducers, err = h.loadTopProducers(ctx)
	if err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	resp.MaterialUsage, err = h.loadMaterialUsage(ctx)
	if err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	return resp, nil
}

func (h GetMarketplaceStatsQueryHandler) checkAdmin(
	ctx context.Context,
	adminID kernel.UUID,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT role FROM participants WHERE id = ?
	`, adminID.String()).Row()

	var roleValue string
	if err := row.Scan(&roleValue); err != nil {
		return errs.NewUnauthorizedErrorWithCause("view marketplace stats", err)
	}

	role, err := participant.RoleFromString(roleValue)
	if err != nil {
		return err
	}

	if role != participant.RoleAdmin {
		return errs.NewUnauthorizedError("view marketplace stats")
	}

	return nil
}

func (h GetMarketplaceStatsQueryHandler) loadStatusDistribution(
	ctx context.Context,
) (map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[string]int)
	for rows.Next() {
		var status string
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		distribution[status] = count
	}

	return distribution, rows.Err()
}

func (h GetMarketplaceStatsQueryHandler) loadRevenue(
	ctx context.Context,
) (float64, float64, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(final_price), 0),
			COALESCE(SUM(commission_amount), 0)
		FROM orders
		WHERE paid_at IS NOT NULL
	`).Row()

	var revenue, commission sql.NullFloat64
	if err := row.Scan(&revenue, &commission); err != nil {
		return 0, 0, err
	}

	return revenue.Float64, commission.Float64, nil
}

func (h GetMarketplaceStatsQueryHandler) loadTopProducers(
	ctx context.Context,
) ([]ProducerStats, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, completed_orders, total_orders
		FROM participants
		WHERE role = ?
		ORDER BY completed_orders DESC, name
		LIMIT ?
	`, participant.RoleProducer.String(), topProducersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	producers := make([]ProducerStats, 0, topProducersLimit)
	for rows.Next() {
		var stats ProducerStats
		var id uuid.UUID

		err = rows.Scan(&id, &stats.Name, &stats.CompletedOrders, &stats.TotalOrders)
		if err != nil {
			return nil, err
		}

		stats.ProducerID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		producers = append(producers, stats)
	}

	return producers, rows.Err()
}

func (h GetMarketplaceStatsQueryHandler) loadMaterialUsage(
	ctx context.Context,
) ([]MaterialUsage, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT material_name, COUNT(*)
		FROM orders
		GROUP BY material_name
		ORDER BY COUNT(*) DESC, material_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make([]MaterialUsage, 0)
	for rows.Next() {
		var entry MaterialUsage

		if err = rows.Scan(&entry.MaterialName, &entry.OrderCount); err != nil {
			return nil, err
		}
		usage = append(usage, entry)
	}

	return usage, rows.Err()
}

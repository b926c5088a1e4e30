package queries

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrGetMarketplaceStatsQueryIsNotConstructed = errors.New(
	"GetMarketplaceStatsQuery must be created via NewGetMarketplaceStatsQuery constructor",
)

// GetMarketplaceStatsQuery retrieves platform-wide aggregates for the admin
// dashboard: order status distribution, paid revenue and commission totals,
// open dispute count, the most active producers, and material usage.
type GetMarketplaceStatsQuery struct {
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMarketplaceStatsQuery creates a stats query on behalf of an admin.
func NewGetMarketplaceStatsQuery(adminID kernel.UUID) (GetMarketplaceStatsQuery, error) {
	if err := adminID.Validate(); err != nil {
		return GetMarketplaceStatsQuery{}, err
	}

	return GetMarketplaceStatsQuery{
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMarketplaceStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketplaceStatsQueryIsNotConstructed)
}

// AdminID returns the admin requesting the stats.
func (q GetMarketplaceStatsQuery) AdminID() kernel.UUID {
	return q.adminID
}

// ProducerStats is one producer in the leaderboard.
type ProducerStats struct {
	ProducerID      kernel.UUID
	Name            string
	CompletedOrders int
	TotalOrders     int
}

// MaterialUsage is the order count for one material.
type MaterialUsage struct {
	MaterialName string
	OrderCount   int
}

// GetMarketplaceStatsQueryResponse is the admin dashboard snapshot.
type GetMarketplaceStatsQueryResponse struct {
	OrdersByStatus  map[string]int
	PaidRevenue     float64
	CommissionTotal float64
	OpenDisputes    int
	TopProducers    []ProducerStats
	MaterialUsage   []MaterialUsage
}

// Package ports defines repository and collaborator interfaces for the
// marketplace domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without
	// touching its status column. Used for payment links, shipping info
	// and tracking updates.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status transition conditionally: the row is
	// only written when the stored status still equals expected. When
	// another actor moved the order first, no row matches and the method
	// returns an error wrapping errs.ErrInvalidTransition, so exactly one
	// of N concurrent transitions wins.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByProducer retrieves all orders assigned to the given producer,
	// newest first.
	GetByProducer(ctx context.Context, producerID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetStaleUnpaid retrieves unpaid orders in pending or accepted status
	// whose last status change happened before the cutoff. Used by the
	// cleanup job to cancel abandoned orders.
	GetStaleUnpaid(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// AppendHistory persists one audit record of a status transition.
	// Records are append-only and never updated.
	AppendHistory(ctx context.Context, record *order.HistoryRecord) error

	// GetHistory retrieves the full transition history of an order in
	// chronological order.
	GetHistory(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryRecord, error)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ParticipantRepoFactory provides access to the participant repository within a transaction.
	ParticipantRepoFactory interface {
		ParticipantRepository() ports.ParticipantRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MaterialRepoFactory provides access to the material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// BillingRepoFactory provides access to the billing repository within a transaction.
	BillingRepoFactory interface {
		BillingRepository() ports.BillingRepository
	}

	// PhotoRepoFactory provides access to the photo repository within a transaction.
	PhotoRepoFactory interface {
		PhotoRepository() ports.PhotoRepository
	}

	// ParticipantUoW manages transactions for participant registration.
	ParticipantUoW interface {
		TxManager
		ParticipantRepoFactory
	}

	// ParticipantUoWFactory creates new participant unit of work instances.
	ParticipantUoWFactory interface {
		Create() ParticipantUoW
	}

	// OrderUoW manages transactions for order-only operations: rejection,
	// cancellation, payment callbacks, shipping updates and stale cleanup.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for model upload.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CreateOrderUoW manages transactions for order creation, which resolves
	// the product, the material catalog and the producer pool while writing
	// the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		MaterialRepoFactory
		ParticipantRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AcceptUoW manages transactions for order acceptance, which binds a
	// verified producer to the order.
	AcceptUoW interface {
		TxManager
		OrderRepoFactory
		ParticipantRepoFactory
	}

	// AcceptUoWFactory creates new acceptance unit of work instances.
	AcceptUoWFactory interface {
		Create() AcceptUoW
	}

	// PhotoUoW manages transactions touching photos and the owning order.
	PhotoUoW interface {
		TxManager
		OrderRepoFactory
		PhotoRepoFactory
	}

	// PhotoUoWFactory creates new photo unit of work instances.
	PhotoUoWFactory interface {
		Create() PhotoUoW
	}

	// ArchiveUoW manages transactions for photo archival.
	ArchiveUoW interface {
		TxManager
		PhotoRepoFactory
	}

	// ArchiveUoWFactory creates new archival unit of work instances.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	// SettlementUoW manages transactions that settle money: delivery
	// confirmation (payout bundle) and dispute resolution (refunds). The
	// order write, the billing rows and the producer counters commit
	// together.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		BillingRepoFactory
		ParticipantRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)

package ports

import (
	"context"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
)

// NotificationKind identifies the lifecycle event a notification reports.
type NotificationKind string

// Notification kinds published on order lifecycle transitions.
const (
	NotificationOrderCreated     NotificationKind = "order.created"
	NotificationOrderAccepted    NotificationKind = "order.accepted"
	NotificationOrderRejected    NotificationKind = "order.rejected"
	NotificationOrderCancelled   NotificationKind = "order.cancelled"
	NotificationOrderPaid        NotificationKind = "order.paid"
	NotificationOrderCompleted   NotificationKind = "order.completed"
	NotificationOrderConfirmed   NotificationKind = "order.confirmed"
	NotificationDisputeOpened    NotificationKind = "order.dispute_opened"
	NotificationDisputeResolved  NotificationKind = "order.dispute_resolved"
	NotificationShippingUpdated  NotificationKind = "order.shipping_updated"
	NotificationPhotoAttached    NotificationKind = "order.photo_attached"
	NotificationPayoutScheduled  NotificationKind = "payout.scheduled"
)

// Notification is the event payload published to interested parties after a
// lifecycle transition commits.
type Notification struct {
	Kind        NotificationKind
	OrderID     kernel.UUID
	RecipientID kernel.UUID
	Status      order.Status
	Message     string
}

// Notifier publishes lifecycle notifications. Implementations are fire and
// forget: publish failures are logged by callers, never propagated into the
// command result, because the state change already committed.
type Notifier interface {
	// Publish sends one notification.
	Publish(ctx context.Context, notification Notification) error

	// Close releases the underlying transport.
	Close() error
}

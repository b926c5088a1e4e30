// Package order provides domain entities and business logic for order
// management in the marketplace. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root carrying the frozen pricing snapshot, payment
//     and shipping fields, and the lifecycle status
//   - Status: A state machine enforcing the closed order transition table
//   - HistoryRecord: The append-only audit trail, one record per transition
//   - Photo: Evidence photos with per-type attachment rules
//   - PaymentStatus, PhotoType, DisputeResolution: closed enums so invalid
//     values are construction-time errors rather than stray strings
//
// Key business rules:
//   - Orders must reference a valid customer, product and material
//   - Status changes only through ApplyTransition, which validates the pair
//     against the transition table and emits one immutable HistoryRecord
//   - The pricing snapshot is frozen at creation and never recomputed
//   - Orders are never deleted; cancellation and refunds are terminal statuses
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

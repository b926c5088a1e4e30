// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ProducerMatcher: A domain service for building the pool of producers
//     eligible to take an order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services

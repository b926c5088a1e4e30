package queries

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrGetProducerPoolQueryIsNotConstructed = errors.New(
	"GetProducerPoolQuery must be created via NewGetProducerPoolQuery constructor",
)

// GetProducerPoolQuery retrieves the pending orders the calling producer is
// eligible to accept. Eligibility follows the matching rules: the producer
// must support the order's material and own a printer large enough for the
// model, where a producer with no printers accepts any size.
//
// Example:
//
//	query, err := NewGetProducerPoolQuery(producerID)
//	if err != nil {
//	    return fmt.Errorf("invalid producer id: %w", err)
//	}
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get producer pool: %w", err)
//	}
//
//	fmt.Printf("%d orders available\n", len(pool))
type GetProducerPoolQuery struct {
	producerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProducerPoolQuery creates a query for the producer's eligible pool.
func NewGetProducerPoolQuery(producerID kernel.UUID) (GetProducerPoolQuery, error) {
	if err := producerID.Validate(); err != nil {
		return GetProducerPoolQuery{}, err
	}

	return GetProducerPoolQuery{
		producerID: producerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProducerPoolQuery) Validate() error {
	return q.guard.Validate(ErrGetProducerPoolQueryIsNotConstructed)
}

// ProducerID returns the producer whose pool is requested.
func (q GetProducerPoolQuery) ProducerID() kernel.UUID {
	return q.producerID
}

// GetProducerPoolQueryResponse is one pending order the producer can accept.
type GetProducerPoolQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ProductID       kernel.UUID
	ProductTitle    string
	MaterialName    string
	Color           string
	InfillDensity   float64
	SupportRequired bool
	FinalPrice      float64
	BoundingBox     kernel.Dimensions
	CreatedAt       time.Time
}

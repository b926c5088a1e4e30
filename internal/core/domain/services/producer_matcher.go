package services

import (
	"errors"
	"sort"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
)

// ErrProducerNotFound is returned when no suitable producer is available for
// an order. This occurs when either no producers are provided or none of the
// provided producers supports the requested material and can fit the model.
var ErrProducerNotFound = errors.New("producer not found")

// ProducerMatcher is a domain service responsible for building the pool of
// producers eligible to take an order.
//
// Business rules:
//   - Only participants with the producer role are considered
//   - A producer must support the order's material
//   - A producer must have at least one printer whose build volume fits the
//     model's bounding box (producers without registered printers are assumed
//     to handle any size)
//   - The pool is ordered by confirmed order count, most experienced first
//
// Example usage:
//
//	matcher := services.NewProducerMatcher()
//	pool, err := matcher.Match(boundingBox, "PLA", producers)
//	if errors.Is(err, services.ErrProducerNotFound) {
//	    // No eligible producer for this model and material
//	    return
//	}
type ProducerMatcher struct{}

// NewProducerMatcher creates a new ProducerMatcher instance.
func NewProducerMatcher() ProducerMatcher {
	return ProducerMatcher{}
}

// CanHandle reports whether a single producer is eligible for a model with
// the given bounding box printed in the given material.
func (m ProducerMatcher) CanHandle(
	producer *participant.Participant,
	boundingBox kernel.Dimensions,
	materialName string,
) (bool, error) {
	if err := producer.Validate(); err != nil {
		return false, err
	}

	if !producer.IsProducer() {
		return false, nil
	}

	if !producer.SupportsMaterial(materialName) {
		return false, nil
	}

	return producer.CanFitModel(boundingBox), nil
}

// Match filters the given participants down to the producers eligible for
// the model and material, ordered by confirmed order count descending.
//
// Returns ErrProducerNotFound when the pool comes out empty.
func (m ProducerMatcher) Match(
	boundingBox kernel.Dimensions,
	materialName string,
	producers []*participant.Participant,
) ([]*participant.Participant, error) {
	var pool []*participant.Participant

	for _, p := range producers {
		eligible, err := m.CanHandle(p, boundingBox, materialName)
		if err != nil {
			return nil, err
		}

		if eligible {
			pool = append(pool, p)
		}
	}

	if len(pool) == 0 {
		return nil, ErrProducerNotFound
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].CompletedOrders() > pool[j].CompletedOrders()
	})

	return pool, nil
}

package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/domain/model/pricing"
	"printmarket/internal/core/domain/model/product"
)

func testQuote() order.Quote {
	params := pricing.DefaultParameters(0.08)
	result := pricing.Calculate(pricing.EstimateInput{
		WeightG:          50,
		PrintTimeMinutes: 120,
	}, params)
	return order.QuoteFromPricing(result, params.CommissionRate)
}

// newTestOrder builds a draft order owned by the given customer.
func newTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		"PLA",
		0.2,
		false,
		"black",
		"",
		testQuote(),
		time.Now(),
	)
	require.NoError(t, err)

	return testOrder
}

// advanceOrderTo walks the order through the happy path until it reaches the
// target status, assigning the producer at acceptance.
func advanceOrderTo(t *testing.T, testOrder *order.Order, producerID kernel.UUID, target order.Status) {
	t.Helper()

	path := []order.Status{
		order.Pending,
		order.Accepted,
		order.Paid,
		order.InProduction,
		order.CompletedByProducer,
		order.Confirmed,
	}

	for _, next := range path {
		if testOrder.Status() == target {
			return
		}

		_, err := testOrder.ApplyTransition(next, testOrder.CustomerID(), "test setup", time.Now())
		require.NoError(t, err)

		if next == order.Accepted {
			require.NoError(t, testOrder.AssignProducer(producerID, time.Now().Add(72*time.Hour)))
		}
	}

	require.Equal(t, target, testOrder.Status())
}

// newTestProducer builds a producer supporting the given material with a
// 220x220x250 printer.
func newTestProducer(t *testing.T, producerID kernel.UUID, materialName string) *participant.Participant {
	t.Helper()

	producer, err := participant.NewParticipant(
		producerID, "producer@example.com", "Test Producer", participant.RoleProducer, time.Now())
	require.NoError(t, err)
	require.NoError(t, producer.SupportMaterial(materialName))

	buildVolume, err := kernel.NewDimensions(220, 220, 250)
	require.NoError(t, err)
	require.NoError(t, producer.AddPrinter("Test Printer", buildVolume))

	return producer
}

// newTestProduct builds a product with a small frozen analysis.
func newTestProduct(t *testing.T, ownerID kernel.UUID) *product.Product {
	t.Helper()

	analysis := &geometry.Analysis{
		TriangleCount:        12,
		Width:                40,
		Depth:                40,
		Height:               20,
		VolumeMM3:            32000,
		SurfaceAreaMM2:       9600,
		BoundingBoxVolumeMM3: 32000,
	}

	testProduct, err := product.NewProduct(
		kernel.NewUUID(), ownerID, "Test Bracket", "", "bracket.stl", "models/abc", analysis, time.Now())
	require.NoError(t, err)

	return testProduct
}

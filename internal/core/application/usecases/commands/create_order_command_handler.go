package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/domain/model/pricing"
	"printmarket/internal/core/domain/services"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// ErrNoProducerAvailable is returned when no producer in the marketplace
// supports the requested material and can fit the model.
var ErrNoProducerAvailable = errors.New("no producer available for this order")

// CreateOrderCommandHandler handles order placement. It resolves the product
// and the material, derives the print estimate from the frozen geometry
// analysis, computes the pricing snapshot and submits the order to the
// producer pool in pending status.
//
// All reads and writes share one transaction. After commit, every eligible
// producer is notified fire-and-forget.
type CreateOrderCommandHandler struct {
	uowFactory     CreateOrderUoWFactory
	matcher        services.ProducerMatcher
	notifier       ports.Notifier
	commissionRate float64
	logger         zerolog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement. A
// non-positive commissionRate falls back to pricing.DefaultCommissionRate.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	matcher services.ProducerMatcher,
	notifier ports.Notifier,
	commissionRate float64,
	logger zerolog.Logger,
) CreateOrderCommandHandler {
	if commissionRate <= 0 {
		commissionRate = pricing.DefaultCommissionRate
	}

	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		matcher:        matcher,
		notifier:       notifier,
		commissionRate: commissionRate,
		logger:         logger,
	}
}

// Handle processes the order creation command.
//
// The pricing snapshot is frozen here and never recomputed: later material
// price changes do not affect existing orders. Returns ErrNoProducerAvailable
// when the pool is empty, leaving nothing persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderedProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	mat, err := uow.MaterialRepository().GetByName(ctx, cmd.MaterialName())
	if err != nil {
		return err
	}
	if !mat.Active() {
		return errs.NewValueIsInvalidErrorWithCause("material",
			fmt.Errorf("material %q is no longer offered", mat.Name()))
	}

	analysis := orderedProduct.Analysis()
	estimate := geometry.EstimatePrintProperties(&analysis, mat.DensityGPerCM3())

	params := pricing.DefaultParameters(mat.PricePerGram())
	params.CommissionRate = h.commissionRate
	params.InfillDensity = cmd.InfillDensity()
	params.SupportRequired = cmd.SupportRequired()
	result := pricing.Calculate(pricing.EstimateInput{
		WeightG:          estimate.WeightG,
		PrintTimeMinutes: estimate.PrintTimeMinutes,
	}, params)

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ProductID(),
		mat.ID(),
		mat.Name(),
		cmd.InfillDensity(),
		cmd.SupportRequired(),
		cmd.Color(),
		cmd.Notes(),
		order.QuoteFromPricing(result, params.CommissionRate),
		now,
	)
	if err != nil {
		return err
	}

	record, err := newOrder.ApplyTransition(order.Pending, cmd.CustomerID(), "submitted to producer pool", now)
	if err != nil {
		return err
	}

	producers, err := uow.ParticipantRepository().GetAllProducers(ctx)
	if err != nil {
		return err
	}

	pool, err := h.matcher.Match(orderedProduct.BoundingBox(), mat.Name(), producers)
	if errors.Is(err, services.ErrProducerNotFound) {
		return ErrNoProducerAvailable
	}
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyPool(ctx, newOrder, pool)

	return nil
}

// notifyPool tells eligible producers about new work. Best effort: the order
// already committed, so publish failures are only logged.
func (h CreateOrderCommandHandler) notifyPool(ctx context.Context, newOrder *order.Order, pool []*participant.Participant) {
	for _, producer := range pool {
		err := h.notifier.Publish(ctx, ports.Notification{
			Kind:        ports.NotificationOrderCreated,
			OrderID:     newOrder.ID(),
			RecipientID: producer.ID(),
			Status:      newOrder.Status(),
			Message:     "new order available in the pool",
		})
		if err != nil {
			h.logger.Warn().Err(err).
				Str("order_id", newOrder.ID().String()).
				Str("producer_id", producer.ID().String()).
				Msg("failed to notify producer about new order")
		}
	}
}

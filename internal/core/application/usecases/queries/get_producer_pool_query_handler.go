package queries

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/domain/services"
	"printmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProducerPoolQueryHandler builds the pool of pending orders a producer is
// eligible to accept. The producer aggregate is restored from storage first so
// the eligibility check runs through the same matching rules the acceptance
// command uses.
//
// Example:
//
//	handler := NewGetProducerPoolQueryHandler(db, services.NewProducerMatcher())
//	query, _ := NewGetProducerPoolQuery(producerID)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get producer pool: %v", err)
//	    return err
//	}
type GetProducerPoolQueryHandler struct {
	db      *gorm.DB
	matcher services.ProducerMatcher
}

// NewGetProducerPoolQueryHandler creates a handler for producer pool queries.
func NewGetProducerPoolQueryHandler(
	db *gorm.DB,
	matcher services.ProducerMatcher,
) GetProducerPoolQueryHandler {
	return GetProducerPoolQueryHandler{db: db, matcher: matcher}
}

// Handle restores the calling producer, loads every pending order together
// with its model's bounding box, and keeps only the orders the producer can
// actually print.
func (h GetProducerPoolQueryHandler) Handle(
	ctx context.Context,
	query GetProducerPoolQuery,
) ([]GetProducerPoolQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	producer, err := h.loadProducer(ctx, query.ProducerID())
	if err != nil {
		return nil, err
	}

	if !producer.IsProducer() {
		return nil, errs.NewUnauthorizedError("only producers can browse the order pool")
	}

	pool := make([]GetProducerPoolQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.product_id,
			p.title,
			o.material_name,
			o.color,
			o.infill_density,
			o.support_required,
			o.final_price,
			p.width,
			p.depth,
			p.height,
			o.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status = ?
		ORDER BY o.created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProducerPoolQueryResponse
		var id, customerID, productID uuid.UUID
		var width, depth, height float64

		err = rows.Scan(
			&id,
			&customerID,
			&productID,
			&resp.ProductTitle,
			&resp.MaterialName,
			&resp.Color,
			&resp.InfillDensity,
			&resp.SupportRequired,
			&resp.FinalPrice,
			&width,
			&depth,
			&height,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ProductID = prodID

		boundingBox, dimErr := kernel.NewDimensions(width, depth, height)
		if dimErr != nil {
			return nil, dimErr
		}
		resp.BoundingBox = boundingBox

		eligible, matchErr := h.matcher.CanHandle(producer, boundingBox, resp.MaterialName)
		if matchErr != nil {
			return nil, matchErr
		}
		if !eligible {
			continue
		}

		pool = append(pool, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}

// loadProducer restores the participant aggregate together with its supported
// materials and registered printers.
func (h GetProducerPoolQueryHandler) loadProducer(
	ctx context.Context,
	producerID kernel.UUID,
) (*participant.Participant, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email, name, role, completed_orders, total_orders, created_at
		FROM participants
		WHERE id = ?
	`, producerID.String()).Row()

	var id uuid.UUID
	var email, name, roleValue string
	var completedOrders, totalOrders int
	var createdAt time.Time

	err := row.Scan(&id, &email, &name, &roleValue, &completedOrders, &totalOrders, &createdAt)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("producerID", producerID, err)
	}

	participantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	role, err := participant.RoleFromString(roleValue)
	if err != nil {
		return nil, err
	}

	materials, err := h.loadMaterials(ctx, producerID)
	if err != nil {
		return nil, err
	}

	printers, err := h.loadPrinters(ctx, producerID)
	if err != nil {
		return nil, err
	}

	return participant.RestoreParticipant(
		participantID,
		email,
		name,
		role,
		materials,
		printers,
		completedOrders,
		totalOrders,
		createdAt,
	)
}

func (h GetProducerPoolQueryHandler) loadMaterials(
	ctx context.Context,
	producerID kernel.UUID,
) ([]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT material_name
		FROM participant_materials
		WHERE participant_id = ?
		ORDER BY material_name
	`, producerID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		materials = append(materials, name)
	}

	return materials, rows.Err()
}

func (h GetProducerPoolQueryHandler) loadPrinters(
	ctx context.Context,
	producerID kernel.UUID,
) ([]*participant.Printer, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, build_x, build_y, build_z
		FROM printers
		WHERE participant_id = ?
		ORDER BY name
	`, producerID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var printers []*participant.Printer
	for rows.Next() {
		var id uuid.UUID
		var name string
		var buildX, buildY, buildZ float64

		if err = rows.Scan(&id, &name, &buildX, &buildY, &buildZ); err != nil {
			return nil, err
		}

		printerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		buildVolume, dimErr := kernel.NewDimensions(buildX, buildY, buildZ)
		if dimErr != nil {
			return nil, dimErr
		}

		printer, printerErr := participant.RestorePrinter(printerID, name, buildVolume)
		if printerErr != nil {
			return nil, printerErr
		}
		printers = append(printers, printer)
	}

	return printers, rows.Err()
}

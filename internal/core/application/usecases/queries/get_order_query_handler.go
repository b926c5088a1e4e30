package queries

import (
	"context"
	"database/sql"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order together with its status
// history and photos. Visibility is limited to the order's customer, its
// assigned producer, and admins.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle loads the order, checks the actor may see it, and attaches the
// history records in chronological order and all photos.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = h.checkVisibility(ctx, resp, query.ActorID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History, err = h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Photos, err = h.loadPhotos(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			producer_id,
			product_id,
			material_name,
			color,
			infill_density,
			support_required,
			notes,
			status,
			payment_status,
			status_reason,
			payment_link_url,
			estimated_delivery_at,
			tracking_number,
			carrier,
			rating,
			review,
			final_price,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var resp GetOrderQueryResponse
	var id, customerID, productID uuid.UUID
	var producerID uuid.NullUUID
	var estimatedDeliveryAt sql.NullTime
	var rating sql.NullInt64

	err := row.Scan(
		&id,
		&customerID,
		&producerID,
		&productID,
		&resp.MaterialName,
		&resp.Color,
		&resp.InfillDensity,
		&resp.SupportRequired,
		&resp.Notes,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.StatusReason,
		&resp.PaymentLinkURL,
		&estimatedDeliveryAt,
		&resp.TrackingNumber,
		&resp.Carrier,
		&rating,
		&resp.Review,
		&resp.FinalPrice,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, err)
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ProductID, err = kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if producerID.Valid {
		assignee, idErr := kernel.UUIDFromBytes(producerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.ProducerID = &assignee
	}

	if estimatedDeliveryAt.Valid {
		eta := estimatedDeliveryAt.Time
		resp.EstimatedDeliveryAt = &eta
	}

	if rating.Valid {
		value := int(rating.Int64)
		resp.Rating = &value
	}

	return resp, nil
}

// checkVisibility allows the order's customer and producer through directly
// and falls back to a role lookup for anyone else.
func (h GetOrderQueryHandler) checkVisibility(
	ctx context.Context,
	resp GetOrderQueryResponse,
	actorID kernel.UUID,
) error {
	if resp.CustomerID.IsEqual(actorID) {
		return nil
	}
	if resp.ProducerID != nil && resp.ProducerID.IsEqual(actorID) {
		return nil
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT role FROM participants WHERE id = ?
	`, actorID.String()).Row()

	var roleValue string
	if err := row.Scan(&roleValue); err != nil {
		return errs.NewUnauthorizedErrorWithCause("view order", err)
	}

	role, err := participant.RoleFromString(roleValue)
	if err != nil {
		return err
	}

	if role != participant.RoleAdmin {
		return errs.NewUnauthorizedError("view order")
	}

	return nil
}

func (h GetOrderQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryHistoryEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT from_status, to_status, actor_id, reason, created_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderQueryHistoryEntry, 0)
	for rows.Next() {
		var entry GetOrderQueryHistoryEntry
		var actorID uuid.UUID

		err = rows.Scan(
			&entry.FromStatus,
			&entry.ToStatus,
			&actorID,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, rows.Err()
}

func (h GetOrderQueryHandler) loadPhotos(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryPhotoEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, uploader_id, photo_type, storage_ref, caption, uploaded_at, archived
		FROM photos
		WHERE order_id = ?
		ORDER BY uploaded_at
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]GetOrderQueryPhotoEntry, 0)
	for rows.Next() {
		var entry GetOrderQueryPhotoEntry
		var id, uploaderID uuid.UUID

		err = rows.Scan(
			&id,
			&uploaderID,
			&entry.Type,
			&entry.StorageRef,
			&entry.Caption,
			&entry.UploadedAt,
			&entry.Archived,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		entry.UploaderID, err = kernel.UUIDFromBytes(uploaderID[:])
		if err != nil {
			return nil, err
		}
		photos = append(photos, entry)
	}

	return photos, rows.Err()
}

package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	customer,
	customer_phone,
	pickup_address,
	delivery_address,
	pickup_lng,
	pickup_lat,
	delivery_lng,
	delivery_lat,
	items,
	status,
	partner_id,
	created_at,
	updated_at
`

// GetOrdersQueryHandler retrieves order lists from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders, newest first.
// When the query carries a status filter only matching orders are returned.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	if status := query.Status(); status != nil {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = ?
			ORDER BY created_at DESC
		`, *status).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT ` + orderColumns + `
			FROM orders
			ORDER BY created_at DESC
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		orderResp OrderResponse
		id        uuid.UUID
		partnerID *uuid.UUID
		pickupLng float64
		pickupLat float64
		dropLng   float64
		dropLat   float64
		items     pq.StringArray
		status    int
	)

	err := rows.Scan(
		&id,
		&orderResp.Customer,
		&orderResp.CustomerPhone,
		&orderResp.PickupAddress,
		&orderResp.DeliveryAddress,
		&pickupLng,
		&pickupLat,
		&dropLng,
		&dropLat,
		&items,
		&status,
		&partnerID,
		&orderResp.CreatedAt,
		&orderResp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID

	if partnerID != nil {
		linked, idErr := kernel.UUIDFromBytes(partnerID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		orderResp.PartnerID = &linked
	}

	pickup, err := kernel.NewGeoPoint(pickupLng, pickupLat)
	if err != nil {
		return OrderResponse{}, err
	}
	drop, err := kernel.NewGeoPoint(dropLng, dropLat)
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp.PickupPoint = pickup
	orderResp.DeliveryPoint = drop
	orderResp.Items = items
	orderResp.Status = order.Status(status)

	return orderResp, nil
}

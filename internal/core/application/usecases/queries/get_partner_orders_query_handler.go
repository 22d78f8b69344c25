package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler lists the orders a partner is carrying.
// Reads the partner's assignment set first, then resolves the orders in one
// pass, so the result reflects the partner side of the link.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order queries.
// Requires a GORM database connection for query execution.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query for the partner's active orders.
// Returns errs.ErrObjectNotFound when the partner does not exist.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var assignedOrders pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT assigned_orders
		FROM partners
		WHERE id = ?
	`, query.PartnerID().String()).Row()

	if err := row.Scan(&assignedOrders); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundErrorWithCause("partner", query.PartnerID(), err)
		}
		return nil, err
	}

	orders := make([]OrderResponse, 0)
	if len(assignedOrders) == 0 {
		return orders, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id::text = ANY(?)
		ORDER BY created_at DESC
	`, pq.Array([]string(assignedOrders))).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

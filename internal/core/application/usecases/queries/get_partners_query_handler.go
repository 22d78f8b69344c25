package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const partnerColumns = `
	id,
	name,
	email,
	phone,
	location_lng,
	location_lat,
	status,
	assigned_orders,
	created_at,
	updated_at
`

// GetPartnersQueryHandler retrieves partner lists from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner list queries.
// Requires a GORM database connection for query execution.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve partners sorted by name.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	if status := query.Status(); status != nil {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+partnerColumns+`
			FROM partners
			WHERE status = ?
			ORDER BY name
		`, *status).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT ` + partnerColumns + `
			FROM partners
			ORDER BY name
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)

	for rows.Next() {
		partnerResp, scanErr := scanPartnerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		partners = append(partners, partnerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

func scanPartnerRow(rows *sql.Rows) (PartnerResponse, error) {
	var (
		partnerResp PartnerResponse
		id          uuid.UUID
		lng         float64
		lat         float64
		status      int
		assigned    pq.StringArray
	)

	err := rows.Scan(
		&id,
		&partnerResp.Name,
		&partnerResp.Email,
		&partnerResp.Phone,
		&lng,
		&lat,
		&status,
		&assigned,
		&partnerResp.CreatedAt,
		&partnerResp.UpdatedAt,
	)
	if err != nil {
		return PartnerResponse{}, err
	}

	partnerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PartnerResponse{}, err
	}
	partnerResp.ID = partnerID

	location, err := kernel.NewGeoPoint(lng, lat)
	if err != nil {
		return PartnerResponse{}, err
	}
	partnerResp.Location = location
	partnerResp.Status = partner.Status(status)

	partnerResp.AssignedOrders = make([]kernel.UUID, 0, len(assigned))
	for _, raw := range assigned {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return PartnerResponse{}, idErr
		}
		partnerResp.AssignedOrders = append(partnerResp.AssignedOrders, orderID)
	}

	return partnerResp, nil
}

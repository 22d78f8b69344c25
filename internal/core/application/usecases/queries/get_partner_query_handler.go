package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerQueryHandler retrieves a single partner read model from the database.
type GetPartnerQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerQueryHandler creates a handler for single partner queries.
// Requires a GORM database connection for query execution.
func NewGetPartnerQueryHandler(db *gorm.DB) GetPartnerQueryHandler {
	return GetPartnerQueryHandler{db: db}
}

// Handle executes the query for one partner.
// Returns errs.ErrObjectNotFound when no partner matches the identifier.
func (h GetPartnerQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerQuery,
) (PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+partnerColumns+`
		FROM partners
		WHERE id = ?
	`, query.PartnerID().String()).Rows()
	if err != nil {
		return PartnerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PartnerResponse{}, err
		}
		return PartnerResponse{}, errs.NewObjectNotFoundError("partner", query.PartnerID())
	}

	partnerResp, err := scanPartnerRow(rows)
	if err != nil {
		return PartnerResponse{}, err
	}

	return partnerResp, rows.Err()
}

package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves every delivery partner, optionally narrowed to a
// single availability status.
type GetPartnersQuery struct { //nolint:recvcheck //using for validation
	status *partner.Status

	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query for the partner list.
// status is optional; nil returns every partner.
func NewGetPartnersQuery(status *partner.Status) (GetPartnersQuery, error) {
	query := GetPartnersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetPartnersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnersQueryIsNotConstructed if validation fails.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// Status returns the optional availability filter.
func (q GetPartnersQuery) Status() *partner.Status {
	return q.status
}

func (q *GetPartnersQuery) setStatus(status *partner.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// PartnerResponse represents a delivery partner in the read model.
type PartnerResponse struct {
	ID             kernel.UUID
	Name           string
	Email          string
	Phone          string
	Location       kernel.GeoPoint
	Status         partner.Status
	AssignedOrders []kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves the orders currently assigned to a partner.
// The partner's own assignment set is the source of truth, so an order only
// appears here when the partner side of the link acknowledges it.
type GetPartnerOrdersQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a partner's active orders.
func NewGetPartnerOrdersQuery(partnerID kernel.UUID) (GetPartnerOrdersQuery, error) {
	query := GetPartnerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerOrdersQueryIsNotConstructed if validation fails.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner.
func (q GetPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetPartnerOrdersQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnerQueryIsNotConstructed = errors.New(
	"GetPartnerQuery must be created via NewGetPartnerQuery constructor",
)

// GetPartnerQuery retrieves a single partner by their identifier.
type GetPartnerQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerQuery creates a query for one partner.
func NewGetPartnerQuery(partnerID kernel.UUID) (GetPartnerQuery, error) {
	query := GetPartnerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerQueryIsNotConstructed if validation fails.
func (q GetPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerQueryIsNotConstructed)
}

// PartnerID returns the identifier of the requested partner.
func (q GetPartnerQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetPartnerQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

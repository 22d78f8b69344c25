package services

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// ErrNoAvailablePartners is returned when no candidate partner can take the
// order: the list is empty, or every partner is unavailable or already busy.
var ErrNoAvailablePartners = errors.New("no available partners found")

// PartnerSelector is a domain service that picks the delivery partner for an
// order when the caller does not name one. Selection is nearest-first: among
// partners that can take an order, the one with the smallest haversine
// distance from their last reported position to the order's pickup point
// wins. Ties go to the earlier candidate.
//
// Example:
//
//	selector := services.NewPartnerSelector()
//	chosen, err := selector.SelectNearest(order.PickupPoint(), candidates)
//	if errors.Is(err, services.ErrNoAvailablePartners) {
//	    // surface "no available partners found" to the caller
//	}
type PartnerSelector struct{}

// NewPartnerSelector creates a PartnerSelector.
func NewPartnerSelector() PartnerSelector {
	return PartnerSelector{}
}

// SelectNearest returns the available partner nearest to the pickup point.
// Partners that are not AVAILABLE or already carry an order are skipped.
func (s PartnerSelector) SelectNearest(
	pickup kernel.GeoPoint,
	partners []*partner.Partner,
) (*partner.Partner, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	var (
		nearest      *partner.Partner
		bestDistance = math.MaxFloat64
	)

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.CanTakeOrder() {
			continue
		}

		distance, err := p.Location().DistanceTo(pickup)
		if err != nil {
			return nil, err
		}

		if distance < bestDistance {
			bestDistance = distance
			nearest = p
		}
	}

	if nearest == nil {
		return nil, ErrNoAvailablePartners
	}

	return nearest, nil
}

package http

import (
	"fmt"

	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// Operation names an HTTP-level action the policy table can authorize.
type Operation int

const (
	OpCreateOrder Operation = iota
	OpListOrders
	OpGetOrder
	OpUpdateOrder
	OpDeleteOrder
	OpAssignOrder
	OpUnassignOrder
	OpUpdateOrderStatus
	OpListPartnerOrders
	OpCreatePartner
	OpListPartners
	OpGetPartner
	OpUpdatePartner
	OpUpdatePartnerStatus
	OpDeletePartner
)

// partnerAccess describes what a PARTNER caller may do with an operation.
type partnerAccess int

const (
	// partnerDenied blocks partner callers entirely.
	partnerDenied partnerAccess = iota
	// partnerOwnResource allows partner callers only when the resource
	// belongs to their own partner record.
	partnerOwnResource
)

type rule struct {
	partner partnerAccess
}

// policy is the single authorization table. Admins may perform every
// operation; partner access is listed per operation so the rules live in one
// place instead of being scattered across handlers.
func policy() map[Operation]rule {
	return map[Operation]rule{
		OpCreateOrder:         {partner: partnerDenied},
		OpListOrders:          {partner: partnerDenied},
		OpGetOrder:            {partner: partnerOwnResource},
		OpUpdateOrder:         {partner: partnerDenied},
		OpDeleteOrder:         {partner: partnerDenied},
		OpAssignOrder:         {partner: partnerDenied},
		OpUnassignOrder:       {partner: partnerDenied},
		OpUpdateOrderStatus:   {partner: partnerOwnResource},
		OpListPartnerOrders:   {partner: partnerOwnResource},
		OpCreatePartner:       {partner: partnerDenied},
		OpListPartners:        {partner: partnerDenied},
		OpGetPartner:          {partner: partnerOwnResource},
		OpUpdatePartner:       {partner: partnerDenied},
		OpUpdatePartnerStatus: {partner: partnerOwnResource},
		OpDeletePartner:       {partner: partnerDenied},
	}
}

// Authorize checks the caller against the policy table. resourcePartnerID is
// the partner the addressed resource belongs to; nil means the resource has
// no owning partner (an unassigned order, a collection endpoint).
func Authorize(identity auth.Identity, op Operation, resourcePartnerID *kernel.UUID) error {
	r, ok := policy()[op]
	if !ok {
		return errs.NewAccessForbiddenError(fmt.Sprintf("unknown operation %d", op))
	}

	switch identity.Role {
	case user.RoleAdmin:
		return nil
	case user.RolePartner:
		if r.partner != partnerOwnResource {
			return errs.NewAccessForbiddenError("operation requires the ADMIN role")
		}
		if identity.PartnerID == nil || resourcePartnerID == nil ||
			!identity.PartnerID.IsEqual(*resourcePartnerID) {
			return errs.NewAccessForbiddenError("partners may only access their own resources")
		}
		return nil
	default:
		return errs.NewAccessForbiddenError(fmt.Sprintf("unknown role %q", identity.Role))
	}
}

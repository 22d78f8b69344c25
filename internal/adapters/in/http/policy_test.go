package http_test

import (
	"testing"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminIdentity() auth.Identity {
	return auth.Identity{
		UserID: kernel.NewUUID(),
		Role:   user.RoleAdmin,
	}
}

func partnerIdentity(partnerID kernel.UUID) auth.Identity {
	return auth.Identity{
		UserID:    kernel.NewUUID(),
		Role:      user.RolePartner,
		PartnerID: &partnerID,
	}
}

func TestAuthorize_AdminMayPerformEveryOperation(t *testing.T) {
	operations := []httpadapter.Operation{
		httpadapter.OpCreateOrder,
		httpadapter.OpListOrders,
		httpadapter.OpGetOrder,
		httpadapter.OpUpdateOrder,
		httpadapter.OpDeleteOrder,
		httpadapter.OpAssignOrder,
		httpadapter.OpUnassignOrder,
		httpadapter.OpUpdateOrderStatus,
		httpadapter.OpListPartnerOrders,
		httpadapter.OpCreatePartner,
		httpadapter.OpListPartners,
		httpadapter.OpGetPartner,
		httpadapter.OpUpdatePartner,
		httpadapter.OpUpdatePartnerStatus,
		httpadapter.OpDeletePartner,
	}

	for _, op := range operations {
		assert.NoError(t, httpadapter.Authorize(adminIdentity(), op, nil))
	}
}

func TestAuthorize_PartnerDeniedAdminOnlyOperations(t *testing.T) {
	partnerID := kernel.NewUUID()
	identity := partnerIdentity(partnerID)

	adminOnly := []httpadapter.Operation{
		httpadapter.OpCreateOrder,
		httpadapter.OpListOrders,
		httpadapter.OpUpdateOrder,
		httpadapter.OpDeleteOrder,
		httpadapter.OpAssignOrder,
		httpadapter.OpUnassignOrder,
		httpadapter.OpCreatePartner,
		httpadapter.OpListPartners,
		httpadapter.OpUpdatePartner,
		httpadapter.OpDeletePartner,
	}

	for _, op := range adminOnly {
		err := httpadapter.Authorize(identity, op, &partnerID)
		require.ErrorIs(t, err, errs.ErrAccessForbidden)
	}
}

func TestAuthorize_PartnerAllowedOnOwnResource(t *testing.T) {
	partnerID := kernel.NewUUID()
	identity := partnerIdentity(partnerID)

	owned := []httpadapter.Operation{
		httpadapter.OpGetOrder,
		httpadapter.OpUpdateOrderStatus,
		httpadapter.OpListPartnerOrders,
		httpadapter.OpGetPartner,
		httpadapter.OpUpdatePartnerStatus,
	}

	for _, op := range owned {
		assert.NoError(t, httpadapter.Authorize(identity, op, &partnerID))
	}
}

func TestAuthorize_PartnerDeniedOnForeignResource(t *testing.T) {
	identity := partnerIdentity(kernel.NewUUID())
	otherPartner := kernel.NewUUID()

	err := httpadapter.Authorize(identity, httpadapter.OpGetPartner, &otherPartner)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}

func TestAuthorize_PartnerDeniedWhenResourceUnowned(t *testing.T) {
	identity := partnerIdentity(kernel.NewUUID())

	// An unassigned order has no owning partner, so partner callers cannot
	// read it.
	err := httpadapter.Authorize(identity, httpadapter.OpGetOrder, nil)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	identity := auth.Identity{
		UserID: kernel.NewUUID(),
		Role:   user.Role("INTRUDER"),
	}

	err := httpadapter.Authorize(identity, httpadapter.OpListOrders, nil)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}

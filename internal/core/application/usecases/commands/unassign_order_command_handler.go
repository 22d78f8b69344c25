package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrOrderIsNotAssigned = errors.New("order is not assigned to any partner")

// UnassignOrderCommandHandler detaches an order from its partner.
// The order returns to pending and the partner releases the order, becoming
// available again when nothing else is on their plate. When the linked
// partner record no longer exists the order side is still repaired.
type UnassignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUnassignOrderCommandHandler(uowFactory UoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command and returns the identifier of
// the partner the order was released from.
// Returns ErrOrderIsNotAssigned when the order has no partner link.
func (h UnassignOrderCommandHandler) Handle(
	ctx context.Context,
	command UnassignOrderCommand,
) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	ordersRepo := uow.OrderRepository()

	assignedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	partnerID := assignedOrder.Partner()
	if partnerID == nil {
		return kernel.UUID{}, ErrOrderIsNotAssigned
	}

	linkedPartner, err := partnerRepo.Get(ctx, *partnerID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Partner record is gone; repair the order side only.
		linkedPartner = nil
	case err != nil:
		return kernel.UUID{}, err
	}

	if err = assignedOrder.Unassign(); err != nil {
		return kernel.UUID{}, err
	}

	if err = ordersRepo.Update(ctx, assignedOrder); err != nil {
		return kernel.UUID{}, err
	}

	if linkedPartner != nil {
		if err = linkedPartner.ReleaseOrder(assignedOrder.ID()); err != nil {
			return kernel.UUID{}, err
		}

		if err = partnerRepo.Update(ctx, linkedPartner); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return *partnerID, nil
}

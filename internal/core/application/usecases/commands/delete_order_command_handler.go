package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order. When the order is still linked
// to a partner the partner releases it in the same transaction, so deletion
// never strands a partner in a busy state.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	ordersRepo := uow.OrderRepository()

	trackedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if partnerID := trackedOrder.Partner(); partnerID != nil {
		linkedPartner, getErr := partnerRepo.Get(ctx, *partnerID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			// Link already dangling; the delete proceeds regardless.
		case getErr != nil:
			return getErr
		default:
			if err = linkedPartner.ReleaseOrder(trackedOrder.ID()); err != nil {
				return err
			}

			if err = partnerRepo.Update(ctx, linkedPartner); err != nil {
				return err
			}
		}
	}

	if err = ordersRepo.Remove(ctx, trackedOrder.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

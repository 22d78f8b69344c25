package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler advances an order through its lifecycle.
// Terminal transitions (delivered, cancelled) also release the linked partner
// within the same transaction, so a finished order never keeps a partner busy.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Illegal transitions surface the domain error unchanged.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	// Capture the link before the transition clears it on terminal statuses.
	partnerID := trackedOrder.Partner()

	if err = trackedOrder.TransitionTo(command.Status()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if command.Status().IsTerminal() && partnerID != nil {
		linkedPartner, getErr := partnerRepo.Get(ctx, *partnerID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			// Partner already deleted; nothing left to release.
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

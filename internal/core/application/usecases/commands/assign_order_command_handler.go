package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
)

// AssignOrderCommandHandler orchestrates the order assignment process.
// Resolves the target partner, either the one named in the command or the
// nearest available one, and links both aggregates within one transaction.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	partnerID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoAvailablePartners):
//	    log.Println("All partners are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Assigned to partner %s", partnerID)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command and returns the identifier of
// the partner that took the order. The order must be pending and the partner
// must be able to take it; both sides of the link are written in one
// transaction so they never diverge.
func (h AssignOrderCommandHandler) Handle(
	ctx context.Context,
	command AssignOrderCommand,
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

	assignedPartner, err := h.resolvePartner(ctx, uow, command, assignedOrder)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = assignedPartner.TakeOrder(assignedOrder.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = assignedOrder.Assign(assignedPartner.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = ordersRepo.Update(ctx, assignedOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = partnerRepo.Update(ctx, assignedPartner); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return assignedPartner.ID(), nil
}

func (h AssignOrderCommandHandler) resolvePartner(
	ctx context.Context,
	uow UoW,
	command AssignOrderCommand,
	assignedOrder *order.Order,
) (*partner.Partner, error) {
	partnerRepo := uow.PartnerRepository()

	if command.PartnerID() != nil {
		return partnerRepo.Get(ctx, *command.PartnerID())
	}

	candidates, err := partnerRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	return services.NewPartnerSelector().SelectNearest(assignedOrder.PickupPoint(), candidates)
}

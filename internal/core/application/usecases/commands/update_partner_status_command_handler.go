package commands

import (
	"context"
)

// UpdatePartnerStatusCommandHandler applies availability changes to a partner.
// The domain rejects AVAILABLE while the partner still carries an order.
type UpdatePartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerStatusCommandHandler creates a handler for partner status updates.
// Requires a PartnerUoWFactory for transactional persistence.
func NewUpdatePartnerStatusCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerStatusCommandHandler {
	return UpdatePartnerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner status update command.
func (h *UpdatePartnerStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerStatusCommand) error {
	if err := cmd.Validate(); err != nil {
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

	trackedPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if location := cmd.Location(); location != nil {
		if err = trackedPartner.MoveTo(*location); err != nil {
			return err
		}
	}

	if err = trackedPartner.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, trackedPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

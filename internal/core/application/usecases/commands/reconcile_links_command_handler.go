package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ReconcileLinksReport summarizes a reconciliation sweep.
type ReconcileLinksReport struct {
	// OrdersReleased counts orders returned to pending because their
	// partner was missing or no longer acknowledged the assignment.
	OrdersReleased int
	// PartnersReleased counts partner-side links dropped because the
	// referenced order was gone or pointed elsewhere.
	PartnersReleased int
}

// ReconcileLinksCommandHandler repairs dangling order↔partner references.
// Runs both directions of the check inside a single transaction: orders whose
// partner vanished go back to pending, and partners holding references to
// vanished or re-routed orders release them.
type ReconcileLinksCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileLinksCommandHandler creates a handler for link reconciliation.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewReconcileLinksCommandHandler(uowFactory UoWFactory) ReconcileLinksCommandHandler {
	return ReconcileLinksCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command and reports what was repaired.
func (h ReconcileLinksCommandHandler) Handle(
	ctx context.Context,
	command ReconcileLinksCommand,
) (ReconcileLinksReport, error) {
	var report ReconcileLinksReport

	if err := command.Validate(); err != nil {
		return report, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.releaseOrphanedOrders(ctx, uow, &report); err != nil {
		return report, err
	}

	if err := h.releaseOrphanedPartnerLinks(ctx, uow, &report); err != nil {
		return report, err
	}

	if err := uow.Commit(ctx); err != nil {
		return report, err
	}

	return report, nil
}

func (h ReconcileLinksCommandHandler) releaseOrphanedOrders(
	ctx context.Context,
	uow UoW,
	report *ReconcileLinksReport,
) error {
	ordersRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	for _, status := range []order.Status{order.Assigned, order.InProgress} {
		linkedOrders, err := ordersRepo.GetAllByStatus(ctx, status)
		if err != nil {
			return err
		}

		for _, linkedOrder := range linkedOrders {
			partnerID := linkedOrder.Partner()
			if partnerID == nil {
				continue
			}

			linkedPartner, err := partnerRepo.Get(ctx, *partnerID)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return err
			}

			if linkedPartner != nil && linkedPartner.HasOrder(linkedOrder.ID()) {
				continue
			}

			if err = linkedOrder.Unassign(); err != nil {
				return err
			}

			if err = ordersRepo.Update(ctx, linkedOrder); err != nil {
				return err
			}

			report.OrdersReleased++
		}
	}

	return nil
}

func (h ReconcileLinksCommandHandler) releaseOrphanedPartnerLinks(
	ctx context.Context,
	uow UoW,
	report *ReconcileLinksReport,
) error {
	ordersRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	partners, err := partnerRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, trackedPartner := range partners {
		released := false

		for _, orderID := range trackedPartner.AssignedOrders() {
			linkedOrder, err := ordersRepo.Get(ctx, orderID)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return err
			}

			if linkedOrder != nil &&
				linkedOrder.Partner() != nil &&
				linkedOrder.Partner().IsEqual(trackedPartner.ID()) {
				continue
			}

			if err = trackedPartner.ReleaseOrder(orderID); err != nil {
				return err
			}

			released = true
			report.PartnersReleased++
		}

		if released {
			if err = partnerRepo.Update(ctx, trackedPartner); err != nil {
				return err
			}
		}
	}

	return nil
}

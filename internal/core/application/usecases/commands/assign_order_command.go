package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand links a pending order with a delivery partner.
// The partner may be named explicitly, or left empty to let the system pick
// the nearest available partner to the order's pickup point.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, nil) // auto-select
//	if err != nil {
//	    return err
//	}
//	partnerID, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign the given order.
// partnerID is optional; nil requests automatic nearest-partner selection.
func NewAssignOrderCommand(orderID kernel.UUID, partnerID *kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignOrderCommand{}, err
	}
	if err := cmd.setPartnerID(partnerID); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the explicitly requested partner, or nil for auto-selection.
func (c AssignOrderCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}

	c.partnerID = partnerID
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReconcileLinksCommandIsNotConstructed = errors.New(
	"ReconcileLinksCommand must be created via NewReconcileLinksCommand constructor",
)

// ReconcileLinksCommand triggers a sweep over the order↔partner links and
// repairs any side that points at a missing or inconsistent counterpart.
// Partner deletion does not cascade into orders, so this sweep is what
// eventually returns orphaned orders to the pending pool.
type ReconcileLinksCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileLinksCommand creates a new command to trigger link reconciliation.
// This is a parameterless command run periodically by the job scheduler.
func NewReconcileLinksCommand() ReconcileLinksCommand {
	return ReconcileLinksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileLinksCommandIsNotConstructed if validation fails.
func (c *ReconcileLinksCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileLinksCommandIsNotConstructed,
	)
}

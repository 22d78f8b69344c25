// Package order provides the Order aggregate and its lifecycle state machine.
//
// An order moves through pending → assigned → in_progress → delivered, may be
// cancelled from any non-terminal state, and returns from assigned to pending
// only through unassignment. The aggregate guards the order side of the
// order↔partner linkage invariant: a partner reference exists exactly while
// the order is assigned or in progress, so terminal transitions clear it.
package order

package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition graph:
//
//	Pending ──> Assigned ──> InProgress ──> Delivered
//	   ^           │
//	   └───────────┘ (unassignment)
//
//	Pending/Assigned/InProgress ──> Cancelled
//
// Pending→Assigned happens only through order assignment and
// Assigned→Pending only through unassignment; Delivered and Cancelled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the order awaits partner assignment.
	Pending

	// Assigned indicates a delivery partner has been linked to the order.
	Assigned

	// InProgress indicates the assigned partner has started the delivery.
	InProgress

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal abort state, reachable from any
	// non-terminal status.
	Cancelled
)

// statusStrings maps statuses to their wire representation, matching the
// persisted and HTTP-visible form.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire form of a status. Unrecognized values
// return an error so malformed client input fails fast.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation. It implements fmt.Stringer and is
// safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks that the order may be handed to a partner without
// performing the transition. Only Pending orders are assignable.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order is already assigned or completed (%s)", s))
	}
	return nil
}

// Assign transitions Pending to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Assigned, nil
}

// Unassign reverts an active assignment to Pending. InProgress is included so
// that a reconciliation pass can revert orders whose partner vanished.
func (s Status) Unassign() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order cannot be unassigned", s))
	}
	return Pending, nil
}

// Start transitions Assigned to InProgress.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order cannot be started", s))
	}
	return InProgress, nil
}

// Deliver transitions InProgress to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order cannot be delivered", s))
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order cannot be cancelled", s))
	}
	return Cancelled, nil
}

// ValidateCanHavePartner enforces the linkage invariant between status and
// partner assignment: a partner reference exists exactly when the order is
// Assigned or InProgress.
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	active := s == Assigned || s == InProgress
	if hasPartner && !active {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order must not have a partner", s))
	}
	if !hasPartner && active {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order must have a partner", s))
	}
	return nil
}

package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents a delivery partner's availability state. Only Available
// partners can take new orders; OnDelivery is set automatically while the
// partner carries an active order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the partner is free to take an order.
	Available

	// Offline means the partner is not working.
	Offline

	// OnBreak means the partner is working but temporarily unavailable.
	OnBreak

	// OnDelivery means the partner is carrying an active order.
	OnDelivery

	// Assigned is a legacy state kept for wire compatibility; the engine
	// itself always sets OnDelivery when linking an order.
	Assigned
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Available:  "AVAILABLE",
		Offline:    "OFFLINE",
		OnBreak:    "ON_BREAK",
		OnDelivery: "ON_DELIVERY",
		Assigned:   "ASSIGNED",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:  "AVAILABLE",
		Offline:    "OFFLINE",
		OnBreak:    "ON_BREAK",
		OnDelivery: "ON_DELIVERY",
		Assigned:   "ASSIGNED",
	}
}

// StatusFromString parses the wire form of a partner status.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid partner status", s))
}

// Validate checks the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation. Safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsBusy reports whether the partner is carrying an active order.
func (s Status) IsBusy() bool {
	return s == OnDelivery || s == Assigned
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a delivery request. It owns the order
// lifecycle and the order side of the order↔partner linkage.
//
// Invariants:
//   - customer name, phone, both addresses, and both geo points are present
//   - the items list is non-empty and contains no blank entries
//   - partnerID is non-nil exactly when status is Assigned or InProgress
//   - status transitions follow the graph documented on Status
type Order struct {
	id kernel.UUID

	customer        string
	customerPhone   string
	pickupAddress   string
	deliveryAddress string
	pickupPoint     kernel.GeoPoint
	deliveryPoint   kernel.GeoPoint
	items           []string

	status    Status
	partnerID *kernel.UUID

	isConstructed bool
}

// Details carries the descriptive fields of an order, separate from its
// lifecycle state. Used by NewOrder and by full updates.
type Details struct {
	Customer        string
	CustomerPhone   string
	PickupAddress   string
	DeliveryAddress string
	PickupPoint     kernel.GeoPoint
	DeliveryPoint   kernel.GeoPoint
	Items           []string
}

// NewOrder creates a Pending, unassigned order after validating all details.
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, verifying that the
// stored status and partner reference are mutually consistent.
func RestoreOrder(id kernel.UUID, details Details, status Status, partnerID *kernel.UUID) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		status.Validate(),
		status.ValidateCanHavePartner(partnerID != nil),
	); err != nil {
		return nil, err
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.partnerID = partnerID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// CustomerPhone returns the customer contact phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// PickupAddress returns the pickup address text.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the delivery address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupPoint returns the pickup coordinate.
func (o *Order) PickupPoint() kernel.GeoPoint {
	return o.pickupPoint
}

// DeliveryPoint returns the delivery coordinate.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// Items returns a copy of the item descriptions.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned partner's ID, or nil when unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// Assign links the order to a partner. The order must be Pending.
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	return nil
}

// Unassign removes the partner link and reverts the order to Pending.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = nil
	return nil
}

// Start marks the delivery as underway. The order must be Assigned.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order delivered and clears the partner link, keeping the
// status↔partner invariant true in the terminal state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = nil
	return nil
}

// Cancel aborts a non-terminal order and clears any partner link.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = nil
	return nil
}

// TransitionTo applies an externally requested status change. Assignment and
// unassignment have dedicated operations and are rejected here.
func (o *Order) TransitionTo(target Status) error {
	switch target {
	case InProgress:
		return o.Start()
	case Delivered:
		return o.Deliver()
	case Cancelled:
		return o.Cancel()
	case Pending:
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("orders return to pending only through unassignment"))
	case Assigned:
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("orders become assigned only through assignment"))
	case Unknown:
		return target.Validate()
	default:
		return target.Validate()
	}
}

// UpdateDetails replaces the descriptive fields of the order. Lifecycle state
// and partner linkage are untouched.
func (o *Order) UpdateDetails(details Details) error {
	return o.setDetails(details)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := errors.Join(
		requireText("customer", details.Customer),
		requireText("customer phone", details.CustomerPhone),
		requireText("pickup address", details.PickupAddress),
		requireText("delivery address", details.DeliveryAddress),
		details.PickupPoint.Validate(),
		details.DeliveryPoint.Validate(),
		validateItems(details.Items),
	); err != nil {
		return err
	}

	o.customer = details.Customer
	o.customerPhone = details.CustomerPhone
	o.pickupAddress = details.PickupAddress
	o.deliveryAddress = details.DeliveryAddress
	o.pickupPoint = details.PickupPoint
	o.deliveryPoint = details.DeliveryPoint
	o.items = make([]string, len(details.Items))
	copy(o.items, details.Items)
	return nil
}

func requireText(name string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %d is blank", i))
		}
	}
	return nil
}

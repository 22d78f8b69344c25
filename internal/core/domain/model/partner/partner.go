package partner

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const minPhoneDigits = 10

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner")
	// ErrPartnerIsNotAvailable is returned when an order is offered to a
	// partner who is not AVAILABLE.
	ErrPartnerIsNotAvailable = errors.New("partner is not available")
	// ErrPartnerHasActiveOrder is returned when an order is offered to a
	// partner who already carries one; partners handle a single active
	// delivery at a time.
	ErrPartnerHasActiveOrder = errors.New("partner already has an active order")
)

// Partner is the aggregate root for a delivery partner. It owns the partner
// side of the order↔partner linkage: the assigned-order set and the
// availability status that must stay consistent with it.
//
// Invariants:
//   - name, email, and phone are present; email parses, phone has at least
//     ten characters
//   - a partner with assigned orders is never Available
//   - at most one active order is held at a time (TakeOrder enforces it);
//     the set stays a list because the persisted and wire form is a list
type Partner struct {
	id kernel.UUID

	name     string
	email    string
	phone    string
	location kernel.GeoPoint

	status         Status
	assignedOrders []kernel.UUID

	isConstructed bool
}

// NewPartner creates an Available partner with no assigned orders. The
// location is the partner's last reported position, used by nearest-partner
// selection.
func NewPartner(id kernel.UUID, name string, email string, phone string, location kernel.GeoPoint) (*Partner, error) {
	p := &Partner{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a partner from persistence, verifying that the
// stored status agrees with the assigned-order set.
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	location kernel.GeoPoint,
	status Status,
	assignedOrders []kernel.UUID,
) (*Partner, error) {
	p := &Partner{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(assignedOrders) > 0 && status == Available {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("partner with assigned orders cannot be AVAILABLE"))
	}
	for _, orderID := range assignedOrders {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.assignedOrders = make([]kernel.UUID, len(assignedOrders))
	copy(p.assignedOrders, assignedOrders)
	return p, nil
}

// Validate ensures the Partner was created through a constructor.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's unique email.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone.
func (p *Partner) Phone() string {
	return p.phone
}

// Location returns the partner's last reported position.
func (p *Partner) Location() kernel.GeoPoint {
	return p.location
}

// Status returns the current availability status.
func (p *Partner) Status() Status {
	return p.status
}

// AssignedOrders returns a copy of the assigned order identifiers.
func (p *Partner) AssignedOrders() []kernel.UUID {
	orders := make([]kernel.UUID, len(p.assignedOrders))
	copy(orders, p.assignedOrders)
	return orders
}

// HasOrder reports whether the given order is in the assigned set.
func (p *Partner) HasOrder(orderID kernel.UUID) bool {
	for _, id := range p.assignedOrders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// CanTakeOrder reports whether the partner may accept a new order: the
// partner must be Available and carry no active order.
func (p *Partner) CanTakeOrder() bool {
	return p.status == Available && len(p.assignedOrders) == 0
}

// TakeOrder adds the order to the assigned set and moves the partner to
// OnDelivery. Fails when the partner is not Available or already busy.
func (p *Partner) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if p.status != Available {
		return errs.NewValueIsInvalidErrorWithCause("partner status", ErrPartnerIsNotAvailable)
	}
	if len(p.assignedOrders) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("partner status", ErrPartnerHasActiveOrder)
	}

	p.assignedOrders = append(p.assignedOrders, orderID)
	p.status = OnDelivery
	return nil
}

// ReleaseOrder removes the order from the assigned set if present; absence is
// not an error so unassignment stays idempotent on the partner side. When the
// set empties, the partner returns to Available.
func (p *Partner) ReleaseOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	kept := p.assignedOrders[:0]
	for _, id := range p.assignedOrders {
		if !id.IsEqual(orderID) {
			kept = append(kept, id)
		}
	}
	p.assignedOrders = kept

	if len(p.assignedOrders) == 0 && p.status.IsBusy() {
		p.status = Available
	}
	return nil
}

// ChangeStatus applies an explicitly requested status update. A partner with
// assigned orders cannot be made Available; the orders must be unassigned or
// completed first.
func (p *Partner) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == Available && len(p.assignedOrders) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("partner still has %d assigned orders", len(p.assignedOrders)))
	}

	p.status = newStatus
	return nil
}

// UpdateContact replaces the partner's name, email, and phone. Status,
// location, and the assigned-order set are not touched by this operation.
func (p *Partner) UpdateContact(name string, email string, phone string) error {
	return errors.Join(
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
	)
}

// MoveTo updates the partner's last reported position.
func (p *Partner) MoveTo(location kernel.GeoPoint) error {
	return p.setLocation(location)
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	p.email = email
	return nil
}

func (p *Partner) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if len(phone) < minPhoneDigits {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("phone must have at least %d digits", minPhoneDigits))
	}
	p.phone = phone
	return nil
}

func (p *Partner) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

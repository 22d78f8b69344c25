package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand replaces the contact fields of an existing partner.
// Status, location, and order assignments are not touched by this operation.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner's contact
// details. Contact fields follow the same rules the aggregate enforces.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	phone string,
) (UpdatePartnerCommand, error) {
	cmd := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return UpdatePartnerCommand{}, err
	}
	if err := cmd.setContact(name, email, phone); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the replacement display name.
func (c UpdatePartnerCommand) Name() string {
	return c.name
}

// Email returns the replacement contact email.
func (c UpdatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the replacement contact phone.
func (c UpdatePartnerCommand) Phone() string {
	return c.phone
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setContact(name, email, phone string) error {
	// The command carries no location; any valid point satisfies the
	// aggregate's contact validation.
	location, err := kernel.NewGeoPoint(0, 0)
	if err != nil {
		return err
	}
	if _, err = partner.NewPartner(c.partnerID, name, email, phone, location); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.phone = phone
	return nil
}

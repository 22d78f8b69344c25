package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand registers a new delivery partner.
// New partners start AVAILABLE at the reported location with no orders.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a delivery partner.
// Contact fields follow the same rules the aggregate enforces.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	phone string,
	location kernel.GeoPoint,
) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return CreatePartnerCommand{}, err
	}
	if err := cmd.setContact(name, email, phone, location); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's contact email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's contact phone.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Location returns the partner's starting position.
func (c CreatePartnerCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setContact(name, email, phone string, location kernel.GeoPoint) error {
	if _, err := partner.NewPartner(c.partnerID, name, email, phone, location); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.location = location
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerStatusCommandIsNotConstructed = errors.New(
	"UpdatePartnerStatusCommand must be created via NewUpdatePartnerStatusCommand constructor",
)

// UpdatePartnerStatusCommand changes a partner's availability status and,
// optionally, records their current position.
type UpdatePartnerStatusCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	status    partner.Status
	location  *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdatePartnerStatusCommand creates a command to update partner availability.
// location is optional; when present the partner's last known position moves too.
func NewUpdatePartnerStatusCommand(
	partnerID kernel.UUID,
	status partner.Status,
	location *kernel.GeoPoint,
) (UpdatePartnerStatusCommand, error) {
	cmd := UpdatePartnerStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setStatus(status),
		cmd.setLocation(location),
	); err != nil {
		return UpdatePartnerStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerStatusCommandIsNotConstructed if validation fails.
func (c UpdatePartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerStatusCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Status returns the requested availability status.
func (c UpdatePartnerStatusCommand) Status() partner.Status {
	return c.status
}

// Location returns the reported position, or nil when unchanged.
func (c UpdatePartnerStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdatePartnerStatusCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerStatusCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdatePartnerStatusCommand) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	c.location = location
	return nil
}

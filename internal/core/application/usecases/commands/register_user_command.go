package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand creates a new account. Partner accounts must name the
// partner record they operate; admin accounts must not.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	name      string
	email     string
	password  string
	role      user.Role
	partnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account.
// The plaintext password never leaves the command; the handler hashes it
// before anything is persisted.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	password string,
	role user.Role,
	partnerID *kernel.UUID,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return RegisterUserCommand{}, err
	}
	if err := cmd.setPassword(password); err != nil {
		return RegisterUserCommand{}, err
	}
	if err := cmd.setAccount(name, email, role, partnerID); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the account display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested authorization role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// PartnerID returns the linked partner for PARTNER accounts, nil for admins.
func (c RegisterUserCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("must be at least 8 characters"))
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setAccount(name, email string, role user.Role, partnerID *kernel.UUID) error {
	// Probe the aggregate rules with a placeholder hash; the real hash is
	// produced by the handler.
	if _, err := user.NewUser(c.userID, name, email, "pending", role, partnerID); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.role = role
	c.partnerID = partnerID
	return nil
}

// Package user provides the User aggregate backing authentication. A user is
// either an ADMIN or a PARTNER; partner users carry a reference to their
// partner record so ownership checks can compare identifiers.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Role is the caller's authorization role.
type Role string

const (
	// RoleAdmin may manage orders, partners, and assignments.
	RoleAdmin Role = "ADMIN"
	// RolePartner may only access their own partner's resources.
	RolePartner Role = "PARTNER"
)

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RolePartner {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// User is the aggregate for an authenticated account. The password is stored
// only as a bcrypt hash produced by the auth adapter.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	partnerID    *kernel.UUID

	isConstructed bool
}

// NewUser creates a user. Partner users must reference a partner record;
// admin users must not.
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	partnerID *kernel.UUID,
) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	if role == RolePartner && partnerID == nil {
		return nil, errs.NewValueIsRequiredError("partnerId")
	}
	if role == RoleAdmin && partnerID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("partnerId",
			errors.New("admin users do not reference a partner"))
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	u.role = role
	u.partnerID = partnerID
	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	partnerID *kernel.UUID,
) (*User, error) {
	return NewUser(id, name, email, passwordHash, role, partnerID)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

// Partner returns the linked partner id for PARTNER users, nil for admins.
func (u *User) Partner() *kernel.UUID {
	return u.partnerID
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

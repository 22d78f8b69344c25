package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrLoginUserQueryIsNotConstructed = errors.New(
	"LoginUserQuery must be created via NewLoginUserQuery constructor",
)

// LoginUserQuery exchanges account credentials for a signed access token.
type LoginUserQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserQuery creates a login query. The email is normalized the same
// way accounts store it so lookups are case insensitive.
func NewLoginUserQuery(email, password string) (LoginUserQuery, error) {
	query := LoginUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return LoginUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginUserQueryIsNotConstructed if validation fails.
func (q LoginUserQuery) Validate() error {
	return q.guard.Validate(ErrLoginUserQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q LoginUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q LoginUserQuery) Password() string {
	return q.password
}

func (q *LoginUserQuery) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = email
	return nil
}

func (q *LoginUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// LoginUserQueryResponse carries the issued token and the account identity.
type LoginUserQueryResponse struct {
	Token     string
	UserID    kernel.UUID
	Name      string
	Email     string
	Role      user.Role
	PartnerID *kernel.UUID
}

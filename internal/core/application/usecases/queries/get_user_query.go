package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single account by its identifier.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query for one account.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	query := GetUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserQueryIsNotConstructed if validation fails.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the requested account.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// GetUserQueryResponse carries the account identity without credentials.
type GetUserQueryResponse struct {
	UserID    kernel.UUID
	Name      string
	Email     string
	Role      user.Role
	PartnerID *kernel.UUID
}

package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetUserQueryHandler resolves the account behind an authenticated request.
type GetUserQueryHandler struct {
	users ports.UserRepository
}

// NewGetUserQueryHandler creates a handler for account lookups.
func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{
		users: users,
	}
}

// Handle loads the account and returns its identity fields.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	account, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	return GetUserQueryResponse{
		UserID:    account.ID(),
		Name:      account.Name(),
		Email:     account.Email(),
		Role:      account.Role(),
		PartnerID: account.Partner(),
	}, nil
}

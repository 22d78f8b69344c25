package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// TokenIssuer signs an access token for an authenticated account.
type TokenIssuer interface {
	Issue(account *user.User) (string, error)
}

// LoginUserQueryHandler authenticates an account and issues an access token.
// A missing account and a wrong password produce the same unauthorized error
// so the response does not reveal which emails are registered.
type LoginUserQueryHandler struct {
	users    ports.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
}

// NewLoginUserQueryHandler creates a handler for login requests.
func NewLoginUserQueryHandler(
	users ports.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
) LoginUserQueryHandler {
	return LoginUserQueryHandler{
		users:    users,
		verifier: verifier,
		issuer:   issuer,
	}
}

// Handle verifies the credentials and returns a signed token with the
// account identity.
func (h LoginUserQueryHandler) Handle(
	ctx context.Context,
	query LoginUserQuery,
) (LoginUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginUserQueryResponse{}, err
	}

	account, err := h.users.GetByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginUserQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}
	if err != nil {
		return LoginUserQueryResponse{}, err
	}

	if err = h.verifier.Verify(account.PasswordHash(), query.Password()); err != nil {
		return LoginUserQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}

	token, err := h.issuer.Issue(account)
	if err != nil {
		return LoginUserQueryResponse{}, err
	}

	return LoginUserQueryResponse{
		Token:     token,
		UserID:    account.ID(),
		Name:      account.Name(),
		Email:     account.Email(),
		Role:      account.Role(),
		PartnerID: account.Partner(),
	}, nil
}

package commands

import (
	"context"

	"dispatch/internal/core/domain/model/user"
)

// PasswordHasher derives a storable hash from a plaintext password.
// The bcrypt implementation lives in the auth adapter.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterUserCommandHandler creates new accounts. Duplicate emails surface
// as errs.ErrObjectAlreadyExists from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserUoWFactory for persistence and a PasswordHasher for
// credential storage.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), passwordHash, cmd.Role(), cmd.PartnerID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if err = userRepo.Add(ctx, newUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		query, err := queries.NewGetUserQuery(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := queries.NewGetUserQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		err := queries.GetUserQuery{}.Validate()

		require.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)
	})
}

func TestGetUserQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	partnerID := kernel.NewUUID()
	account, err := user.NewUser(
		kernel.NewUUID(), "Priya Sharma", "priya@example.com", "$2a$10$hash",
		user.RolePartner, &partnerID)
	require.NoError(t, err)

	query, err := queries.NewGetUserQuery(account.ID())
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", ctx, account.ID()).Return(account, nil).Once()

	handler := queries.NewGetUserQueryHandler(users)
	resp, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, resp.UserID.IsEqual(account.ID()))
	assert.Equal(t, "Priya Sharma", resp.Name)
	assert.Equal(t, "priya@example.com", resp.Email)
	assert.Equal(t, user.RolePartner, resp.Role)
	require.NotNil(t, resp.PartnerID)
	assert.True(t, resp.PartnerID.IsEqual(partnerID))
	users.AssertExpectations(t)
}

func TestGetUserQueryHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	query, err := queries.NewGetUserQuery(userID)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", ctx, userID).
		Return(nil, errs.NewObjectNotFoundError("user", userID)).
		Once()

	handler := queries.NewGetUserQueryHandler(users)
	_, err = handler.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

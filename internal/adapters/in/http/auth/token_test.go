package auth_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminAccount(t *testing.T) *user.User {
	t.Helper()

	account, err := user.NewUser(kernel.NewUUID(), "Admin", "admin@dispatch.test", "hash", user.RoleAdmin, nil)
	require.NoError(t, err)
	return account
}

func partnerAccount(t *testing.T, partnerID kernel.UUID) *user.User {
	t.Helper()

	account, err := user.NewUser(
		kernel.NewUUID(), "Priya", "priya@dispatch.test", "hash", user.RolePartner, &partnerID)
	require.NoError(t, err)
	return account
}

func TestJWTTokenService_IssueAndParse_AdminAccount(t *testing.T) {
	service := auth.NewJWTTokenService("test-secret", time.Hour)
	account := adminAccount(t)

	token, err := service.Issue(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, account.ID().String(), claims.Subject)
	assert.Equal(t, string(user.RoleAdmin), claims.Role)
	assert.Empty(t, claims.PartnerID)
}

func TestJWTTokenService_IssueAndParse_PartnerAccountCarriesPartnerID(t *testing.T) {
	service := auth.NewJWTTokenService("test-secret", time.Hour)
	partnerID := kernel.NewUUID()
	account := partnerAccount(t, partnerID)

	token, err := service.Issue(account)
	require.NoError(t, err)

	claims, err := service.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, string(user.RolePartner), claims.Role)
	assert.Equal(t, partnerID.String(), claims.PartnerID)
}

func TestJWTTokenService_Parse_ExpiredToken(t *testing.T) {
	service := auth.NewJWTTokenService("test-secret", -time.Minute)

	token, err := service.Issue(adminAccount(t))
	require.NoError(t, err)

	_, err = service.Parse(token)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTTokenService_Parse_WrongSecret(t *testing.T) {
	issuer := auth.NewJWTTokenService("issuer-secret", time.Hour)
	verifier := auth.NewJWTTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(adminAccount(t))
	require.NoError(t, err)

	_, err = verifier.Parse(token)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTTokenService_Parse_Garbage(t *testing.T) {
	service := auth.NewJWTTokenService("test-secret", time.Hour)

	_, err := service.Parse("not-a-token")

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Verify(hash, "correct horse battery staple"))

	err = hasher.Verify(hash, "wrong password")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

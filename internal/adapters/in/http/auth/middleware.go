package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

const identityContextKey = "auth.identity"

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID    kernel.UUID
	Role      user.Role
	PartnerID *kernel.UUID
}

// TokenParser verifies an access token and returns its claims.
type TokenParser interface {
	Parse(tokenString string) (*Claims, error)
}

// Middleware returns an echo middleware that requires a valid bearer token
// and stores the caller's Identity in the request context.
func Middleware(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errs.NewUnauthorizedError("missing authorization header")
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return errs.NewUnauthorizedError("authorization header must be a bearer token")
			}

			claims, err := parser.Parse(tokenString)
			if err != nil {
				return err
			}

			identity, err := identityFromClaims(claims)
			if err != nil {
				return err
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated caller stored by Middleware.
func IdentityFrom(c echo.Context) (Identity, error) {
	identity, ok := c.Get(identityContextKey).(Identity)
	if !ok {
		return Identity{}, errs.NewUnauthorizedError("authentication required")
	}
	return identity, nil
}

func identityFromClaims(claims *Claims) (Identity, error) {
	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Identity{}, errs.NewUnauthorizedErrorWithCause("invalid token subject", err)
	}

	role := user.Role(claims.Role)
	if err = role.Validate(); err != nil {
		return Identity{}, errs.NewUnauthorizedErrorWithCause("invalid token role", err)
	}

	identity := Identity{
		UserID: userID,
		Role:   role,
	}

	if claims.PartnerID != "" {
		partnerID, partnerErr := kernel.UUIDFromString(claims.PartnerID)
		if partnerErr != nil {
			return Identity{}, errs.NewUnauthorizedErrorWithCause("invalid token partner", partnerErr)
		}
		identity.PartnerID = &partnerID
	}

	return identity, nil
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// Claims is the JWT payload carried by access tokens. The subject holds the
// user id; partner accounts also carry the partner id so ownership checks do
// not need a database round trip.
type Claims struct {
	Role      string `json:"role"`
	PartnerID string `json:"partnerId,omitempty"`

	jwt.RegisteredClaims
}

// JWTTokenService issues and parses signed access tokens.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService creates a token service signing with HMAC-SHA256.
func NewJWTTokenService(secret string, ttl time.Duration) JWTTokenService {
	return JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs an access token for the authenticated account.
func (s JWTTokenService) Issue(account *user.User) (string, error) {
	if err := account.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role: string(account.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if partnerID := account.Partner(); partnerID != nil {
		claims.PartnerID = partnerID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the token signature and expiry and returns its claims.
// Any failure maps to an unauthorized error.
func (s JWTTokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.NewUnauthorizedError("invalid token")
	}

	return claims, nil
}

// Package auth implements the authentication gate: stateless token
// issuance/verification, password hashing, and the middleware that guards
// protected routes.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by Verify. Handlers and middleware match them
// with errors.Is instead of inspecting jwt internals.
var (
	// ErrMalformedToken means the string is not a parseable JWT at all.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidSignature means the token parsed but was not signed with
	// the configured secret.
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Claims is the payload embedded in every issued token: the credentials
// exactly as the client submitted them at login. No registered claims are
// set — tokens carry no expiry, issuer, or subject, so a token stays valid
// for as long as the secret does.
type Claims struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	PositionId string `json:"positionId"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies tokens with a single shared secret.
// The secret is injected at construction from configuration; it is never
// read from a package-level variable.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the claims with HS256 and returns the compact token string.
// With a configured secret this cannot fail in practice, but the error is
// surfaced rather than swallowed.
func (s *TokenService) Issue(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Issue: sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string and returns its claims.
// It consults nothing but the secret: a token is valid if and only if its
// signature matches. Failures are classified as ErrMalformedToken or
// ErrInvalidSignature.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		default:
			return nil, fmt.Errorf("auth.Verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSignature
	}

	return claims, nil
}

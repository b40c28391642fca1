package middleware

import (
	"context"
	"log"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// NewAuthenticator builds the JWT middleware applied to every protected
// route. Tokens are HS256-signed with the shared secret; the token
// subject is the user id.
func NewAuthenticator(secret, issuer, audience string) (*jwtmiddleware.JWTMiddleware, error) {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(secret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		issuer,
		[]string{audience},
	)
	if err != nil {
		return nil, err
	}

	return jwtmiddleware.New(jwtValidator.ValidateToken), nil
}

// UserID extracts the authenticated user's id (the token subject) from
// the request context. Returns "" when the request was not authenticated.
func UserID(r *http.Request) string {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok {
		log.Println("JWT claims missing from request context")
		return ""
	}
	return claims.RegisteredClaims.Subject
}

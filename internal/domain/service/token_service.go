package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating bearer tokens issued by
// the external authentication collaborator. Token issuance is out of scope;
// this service only verifies what arrives on the Authorization header.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}

package service

import (
	"time"

	"shopseva/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Name   string    `json:"name"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// Identity converts verified claims into the caller seen by the usecases.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		UserID: c.UserID,
		Name:   c.Name,
		Roles:  entity.RolesFromStrings(c.Roles),
	}
}

// IssuedToken is a signed access token with its expiry.
type IssuedToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a token for the given identity.
	GenerateAccessToken(identity entity.Identity) (*IssuedToken, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

package usecase

import (
	"context"
	"time"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput represents the input for shopkeeper registration
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
}

// LoginInput represents the input for email and password login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginInput carries a Firebase ID token
type FirebaseLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthResult is a signed-in caller and their access token
type AuthResult struct {
	UserID      uuid.UUID    `json:"userId"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Roles       entity.Roles `json:"roles"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// AuthUsecase defines sign-up and sign-in
type AuthUsecase interface {
	// RegisterShopkeeper creates a local shopkeeper account and signs it in
	RegisterShopkeeper(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login signs in the administrator or a shopkeeper with email and password
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// FirebaseLogin signs in with a Firebase ID token, creating the shopkeeper on first use
	FirebaseLogin(ctx context.Context, idToken string) (*AuthResult, error)
}

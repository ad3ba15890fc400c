// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"

	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/service"

	"firebase.google.com/go/v4/auth"
)

// tokenVerifier is the part of *auth.Client the verifier needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewIdentityVerifier wraps the Firebase auth client. A nil client yields a
// verifier that reports federated login as disabled.
func NewIdentityVerifier(client *auth.Client, logger *slog.Logger) service.IdentityVerifier {
	if client == nil {
		return &identityVerifier{logger: logger}
	}

	return &identityVerifier{client: client, logger: logger}
}

func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.FederatedIdentity, error) {
	if v.client == nil {
		return nil, domainerrors.ErrFederatedLoginDisabled
	}
	if idToken == "" {
		return nil, domainerrors.ErrIDTokenInvalid.WithDetails("empty token")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.WarnContext(ctx, "Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrIDTokenInvalid
	}

	verified, _ := token.Claims["email_verified"].(bool)

	return &service.FederatedIdentity{
		UID:           token.UID,
		Email:         claimString(token.Claims, "email"),
		EmailVerified: verified,
		Name:          claimString(token.Claims, "name"),
		Phone:         claimString(token.Claims, "phone_number"),
	}, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

package service

import "context"

// FederatedIdentity is the verified subject of a third-party ID token.
type FederatedIdentity struct {
	UID   string
	Email string
	// EmailVerified is the provider's email_verified claim.
	EmailVerified bool
	Name          string
	Phone         string
}

// IdentityVerifier checks ID tokens issued by an external sign-in provider.
type IdentityVerifier interface {
	// VerifyIDToken returns domainerrors.ErrIDTokenInvalid for bad or expired tokens.
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedIdentity, error)
}

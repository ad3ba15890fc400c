package firebase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	domainerrors "shopseva/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestIdentityVerifier_Disabled(t *testing.T) {
	v := NewIdentityVerifier(nil, slog.New(slog.DiscardHandler))

	_, err := v.VerifyIDToken(context.Background(), "token")
	require.ErrorIs(t, err, domainerrors.ErrFederatedLoginDisabled)
}

func TestIdentityVerifier_Valid(t *testing.T) {
	v := &identityVerifier{
		client: stubVerifier{token: &auth.Token{
			UID: "firebase-uid",
			Claims: map[string]any{
				"email":          "owner@example.com",
				"email_verified": true,
				"name":           "Meena Shah",
				"phone_number":   "+919825012345",
			},
		}},
		logger: slog.New(slog.DiscardHandler),
	}

	identity, err := v.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", identity.UID)
	assert.Equal(t, "owner@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Meena Shah", identity.Name)
	assert.Equal(t, "+919825012345", identity.Phone)
}

func TestIdentityVerifier_Rejected(t *testing.T) {
	v := &identityVerifier{
		client: stubVerifier{err: errors.New("expired")},
		logger: slog.New(slog.DiscardHandler),
	}

	_, err := v.VerifyIDToken(context.Background(), "token")
	require.ErrorIs(t, err, domainerrors.ErrIDTokenInvalid)

	_, err = v.VerifyIDToken(context.Background(), "")
	require.ErrorIs(t, err, domainerrors.ErrIDTokenInvalid)
}

func TestIdentityVerifier_UnverifiedEmail(t *testing.T) {
	v := &identityVerifier{
		client: stubVerifier{token: &auth.Token{
			UID: "other-uid",
			Claims: map[string]any{
				"email":          "owner@example.com",
				"email_verified": false,
			},
		}},
		logger: slog.New(slog.DiscardHandler),
	}

	identity, err := v.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", identity.Email)
	assert.False(t, identity.EmailVerified)
}

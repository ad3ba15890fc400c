package validator

import (
	"testing"

	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&usecase.ContactInput{Name: "Ravi", Email: "ravi@example.com", Message: "hi"}))

	err := v.Validate(&usecase.ContactInput{Name: "Ravi", Email: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "message is required")
}

func TestCustomValidator_ReviewRating(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.ReviewInput{Rating: 9, Text: "great"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "rating must be max 5")
}

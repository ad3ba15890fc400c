package entity

import (
	"testing"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestReview_Validate(t *testing.T) {
	assert.NoError(t, (&Review{Rating: 5, Text: "Fresh vegetables"}).Validate())
	assert.ErrorIs(t, (&Review{Rating: 0, Text: "x"}).Validate(), domainerrors.ErrReviewValidation)
	assert.ErrorIs(t, (&Review{Rating: 6, Text: "x"}).Validate(), domainerrors.ErrReviewValidation)
	assert.ErrorIs(t, (&Review{Rating: 3, Text: "  "}).Validate(), domainerrors.ErrReviewValidation)
}

func TestContactMessage_Validate(t *testing.T) {
	valid := &ContactMessage{Name: "Asha", Email: "asha@example.com", Message: "Please add my shop"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&ContactMessage{Name: "Asha", Email: "not-an-email", Message: "hi"}).Validate(),
		domainerrors.ErrMessageValidation)
	assert.ErrorIs(t, (&ContactMessage{Email: "asha@example.com", Message: "hi"}).Validate(),
		domainerrors.ErrMessageValidation)
}

package entity

import (
	"net/mail"
	"strings"
	"time"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/google/uuid"
)

// ContactMessage is a note sent through the public contact form.
type ContactMessage struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// Validate checks the fields the form marks as required.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Message) == "" {
		return domainerrors.ErrMessageValidation
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return domainerrors.ErrMessageValidation.WithDetails("invalid email")
	}

	return nil
}

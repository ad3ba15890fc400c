// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-facing message in the negotiated language
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"` // Business error code, e.g., "SHOP_NOT_FOUND"
	Details string `json:"details,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Localizer translates envelope messages into the caller's language.
type Localizer struct {
	translator service.Translator
}

// NewLocalizer is the constructor for Localizer.
func NewLocalizer(translator service.Translator) *Localizer {
	return &Localizer{translator: translator}
}

// Message returns the text for key in the request's language.
func (l *Localizer) Message(c echo.Context, key, fallback string) string {
	if l == nil || l.translator == nil {
		return fallback
	}

	return l.translator.Translate(deliverycontext.GetLanguage(c), key, fallback)
}

// Success renders a successful envelope with a translated message.
func (l *Localizer) Success(c echo.Context, statusCode int, data any, key, fallback string) error {
	return Success(c, statusCode, data, l.Message(c, key, fallback))
}

// Error renders an error envelope; the error code doubles as the translation key.
func (l *Localizer) Error(c echo.Context, statusCode int, errorCode, fallback, details string) error {
	return Error(c, statusCode, errorCode, l.Message(c, errorCode, fallback), details)
}

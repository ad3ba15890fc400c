package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/delivery/http/response"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error returned by a handler as the JSON envelope.
type ErrorMiddleware struct {
	logger    *slog.Logger
	localizer *response.Localizer
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, localizer *response.Localizer) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:    logger,
		localizer: localizer,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			// Internal details stay in the log.
			details = ""
		}
		_ = m.localizer.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	_ = m.localizer.Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message(), "")
}

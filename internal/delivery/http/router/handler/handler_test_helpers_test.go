package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/delivery/http/middleware"
	"shopseva/internal/delivery/http/response"
	"shopseva/internal/delivery/http/validator"
	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestEcho returns an echo instance carrying the production error handler and validator.
func newTestEcho() *echo.Echo {
	e := echo.New()
	localizer := response.NewLocalizer(nil)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), localizer).HandleHTTPError
	e.Validator = validator.New()
	e.Use(middleware.NewDeviceMiddleware().Process)

	return e
}

// withIdentity signs the request in as the given caller.
func withIdentity(identity entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, identity)
			return next(c)
		}
	}
}

func shopkeeper() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Name: "Meera", Roles: entity.Roles{entity.RoleShopkeeper}}
}

func doRequest(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

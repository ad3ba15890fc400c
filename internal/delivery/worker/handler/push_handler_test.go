package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopseva/config"
	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/constants"
	"shopseva/internal/domain/service"
	mockusecase "shopseva/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockProjectionUsecase) {
	projections := mockusecase.NewMockProjectionUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Projections: projections,
	}), projections
}

func pushBody(t *testing.T, event *service.ModerationEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_AppliesEvent(t *testing.T) {
	h, projections := newPushHandler(t, nil)
	event := &service.ModerationEvent{Type: service.EventShopApproved, ShopID: "s-1", RequestID: "req-from-event"}

	projections.EXPECT().ApplyEvent(mock.Anything, mock.MatchedBy(func(e *service.ModerationEvent) bool {
		return e.Type == service.EventShopApproved && e.ShopID == "s-1"
	})).RunAndReturn(func(ctx context.Context, _ *service.ModerationEvent) error {
		assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))
		return nil
	})

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-from-attrs"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ProjectionFailureAsksForRetry(t *testing.T) {
	h, projections := newPushHandler(t, nil)

	projections.EXPECT().ApplyEvent(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	rec := servePush(h, pushBody(t, &service.ModerationEvent{Type: service.EventShopDeleted}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)

		rec := servePush(h, pushBody(t, &service.ModerationEvent{Type: service.EventShopApproved}, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, &service.ModerationEvent{Type: service.EventShopApproved}, nil),
			http.Header{echo.HeaderAuthorization: {"Bearer token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, projections := newPushHandler(t, cfg)
		var gotAudience string
		h.validate = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		projections.EXPECT().ApplyEvent(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, &service.ModerationEvent{Type: service.EventShopApproved}, nil),
			http.Header{echo.HeaderAuthorization: {"Bearer token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestNewPushHandler_LocalSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h, _ := newPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

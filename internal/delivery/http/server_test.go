package http

import (
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"shopseva/config"
	"shopseva/internal/delivery/http/middleware"
	"shopseva/internal/delivery/http/response"
	"shopseva/internal/delivery/http/router"
	"shopseva/internal/delivery/http/router/handler"
	"shopseva/internal/domain/constants"
	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/service"
	"shopseva/internal/infra/i18n"
	"shopseva/internal/infra/metrics"
	mockservice "shopseva/internal/mocks/service"
	mockusecase "shopseva/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type serverFixtures struct {
	echo      *echo.Echo
	tokens    *mockservice.MockTokenService
	directory *mockusecase.MockDirectoryUsecase
	stats     *mockusecase.MockStatsUsecase
}

func newServerFixtures(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	translator := i18n.NewTranslator(cfg)
	localizer := response.NewLocalizer(translator)

	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("admin-token").
		Return(&service.Claims{UserID: uuid.New(), Name: "Admin", Roles: []string{"admin"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("shopkeeper-token").
		Return(&service.Claims{UserID: uuid.New(), Name: "Meera", Roles: []string{"shopkeeper"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Maybe()

	shops := mockusecase.NewMockShopUsecase(t)
	directory := mockusecase.NewMockDirectoryUsecase(t)
	engagement := mockusecase.NewMockEngagementUsecase(t)
	contact := mockusecase.NewMockContactUsecase(t)
	auth := mockusecase.NewMockAuthUsecase(t)
	stats := mockusecase.NewMockStatsUsecase(t)
	reference := mockusecase.NewMockReferenceUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:                 cfg,
		Logger:              logger,
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger, localizer),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		LanguageMiddleware:  middleware.NewLanguageMiddleware(translator),
		DeviceMiddleware:    middleware.NewDeviceMiddleware(),
		RouterParams: router.RouterParams{
			AuthHandler:       handler.NewAuthHandler(auth, localizer),
			DirectoryHandler:  handler.NewDirectoryHandler(directory, localizer),
			EngagementHandler: handler.NewEngagementHandler(engagement, localizer),
			OwnerHandler:      handler.NewOwnerHandler(shops, localizer),
			AdminHandler:      handler.NewAdminHandler(shops, contact, stats, localizer),
			ContactHandler:    handler.NewContactHandler(contact, localizer),
			ReferenceHandler:  handler.NewReferenceHandler(reference),
			AuthMiddleware:    middleware.NewAuthMiddleware(tokens),
			Registry:          metrics.NewRegistry(),
		},
	})

	return serverFixtures{echo: e, tokens: tokens, directory: directory, stats: stats}
}

func (f serverFixtures) do(method, target, token string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	f := newServerFixtures(t)

	rec := f.do(nethttp.MethodGet, "/health", "", map[string]string{echo.HeaderXRequestID: "req-42"})

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_AdminRoutesRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "anonymous", wantStatus: nethttp.StatusUnauthorized},
		{name: "expired token", token: "expired", wantStatus: nethttp.StatusUnauthorized},
		{name: "shopkeeper", token: "shopkeeper-token", wantStatus: nethttp.StatusForbidden},
		{name: "admin", token: "admin-token", wantStatus: nethttp.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixtures(t)
			if tt.wantStatus == nethttp.StatusOK {
				f.stats.EXPECT().Snapshot(mock.Anything).Return(&entity.AdminStats{TotalShops: 1}, nil)
			}

			rec := f.do(nethttp.MethodGet, "/admin/stats", tt.token, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_ErrorsAreLocalized(t *testing.T) {
	f := newServerFixtures(t)
	id := uuid.New()
	f.directory.EXPECT().GetShop(mock.Anything, id).Return(nil, domainerrors.ErrShopNotFound)

	rec := f.do(nethttp.MethodGet, "/shops/"+id.String()+"?lang=gu", "", nil)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "gu", rec.Header().Get(constants.HeaderContentLanguage))
	assert.Contains(t, rec.Body.String(), "દુકાન મળી નથી")
}

func TestServer_MalformedDeviceIsRejected(t *testing.T) {
	f := newServerFixtures(t)

	rec := f.do(nethttp.MethodPost, "/shops/"+uuid.NewString()+"/like", "", map[string]string{constants.HeaderDeviceID: "../etc"})

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_ID_MISSING")
}

func TestServer_ExposesMetrics(t *testing.T) {
	f := newServerFixtures(t)

	rec := f.do(nethttp.MethodGet, "/metrics", "", nil)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

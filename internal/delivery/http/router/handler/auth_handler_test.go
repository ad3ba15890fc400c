package handler

import (
	"net/http"
	"testing"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	mockusecase "shopseva/internal/mocks/usecase"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(uc *mockusecase.MockAuthUsecase) *echo.Echo {
	h := NewAuthHandler(uc, nil)
	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/firebase", h.FirebaseLogin)

	return e
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	e := newAuthEcho(uc)

	input := &usecase.RegisterInput{Name: "Meera", Email: "meera@example.com", Phone: "9876543210", Password: "secret123"}
	uc.EXPECT().RegisterShopkeeper(mock.Anything, input).Return(&usecase.AuthResult{
		UserID:      uuid.New(),
		Name:        "Meera",
		Email:       "meera@example.com",
		Roles:       entity.Roles{entity.RoleShopkeeper},
		AccessToken: "token",
	}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"name":"Meera","email":"meera@example.com","phone":"9876543210","password":"secret123"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result usecase.AuthResult
	decodeData(t, rec, &result)
	assert.Equal(t, "token", result.AccessToken)
	assert.True(t, result.Roles.Contains(entity.RoleShopkeeper))
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		uc := mockusecase.NewMockAuthUsecase(t)
		e := newAuthEcho(uc)

		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.co", Password: "wrong"}).
			Return(nil, domainerrors.ErrInvalidCredentials)

		rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"wrong"}`, nil)

		assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := mockusecase.NewMockAuthUsecase(t)
		e := newAuthEcho(uc)

		rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_FirebaseLogin(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	e := newAuthEcho(uc)

	uc.EXPECT().FirebaseLogin(mock.Anything, "id-token").Return(&usecase.AuthResult{Name: "Ravi"}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/firebase", `{"idToken":"id-token"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/auth/firebase", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

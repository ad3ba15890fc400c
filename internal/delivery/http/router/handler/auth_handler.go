package handler

import (
	"net/http"

	"shopseva/internal/delivery/http/response"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves sign-up and sign-in.
type AuthHandler struct {
	uc        usecase.AuthUsecase
	localizer *response.Localizer
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, localizer *response.Localizer) *AuthHandler {
	return &AuthHandler{uc: uc, localizer: localizer}
}

// Register handles shopkeeper registration.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	result, err := h.uc.RegisterShopkeeper(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusCreated, result, "REGISTERED", "Registration successful")
}

// Login handles email and password sign-in for shopkeepers and the administrator.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, result, "SIGNED_IN", "Signed in")
}

// FirebaseLogin exchanges a Firebase ID token for an access token.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	input := new(usecase.FirebaseLoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	result, err := h.uc.FirebaseLogin(c.Request().Context(), input.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, result, "SIGNED_IN", "Signed in")
}

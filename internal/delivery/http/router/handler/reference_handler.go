package handler

import (
	"net/http"

	"shopseva/internal/delivery/http/response"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReferenceHandler serves the lookup lists for filters and forms.
type ReferenceHandler struct {
	uc usecase.ReferenceUsecase
}

// NewReferenceHandler is the constructor for ReferenceHandler, injected by Fx.
func NewReferenceHandler(uc usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

func (h *ReferenceHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Categories(), "")
}

func (h *ReferenceHandler) States(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.States(), "")
}

// Districts handles GET /reference/districts?stateId=.
func (h *ReferenceHandler) Districts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Districts(c.QueryParam("stateId")), "")
}

package handler

import (
	"net/http"

	"shopseva/internal/delivery/http/response"
	"shopseva/internal/domain/entity"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler serves the public listing directory.
type DirectoryHandler struct {
	uc        usecase.DirectoryUsecase
	localizer *response.Localizer
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, localizer *response.Localizer) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, localizer: localizer}
}

// SearchShops handles GET /shops?category=&state=&district=&q=.
func (h *DirectoryHandler) SearchShops(c echo.Context) error {
	filter := entity.ShopFilter{
		Category: c.QueryParam("category"),
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Search:   c.QueryParam("q"),
	}

	page, err := h.uc.SearchShops(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetShop handles GET /shops/:id.
func (h *DirectoryHandler) GetShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.uc.GetShop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

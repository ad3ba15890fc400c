package handler

import (
	"net/http"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/delivery/http/response"
	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler serves a shopkeeper's own listings.
type OwnerHandler struct {
	uc        usecase.ShopUsecase
	localizer *response.Localizer
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.ShopUsecase, localizer *response.Localizer) *OwnerHandler {
	return &OwnerHandler{uc: uc, localizer: localizer}
}

// SubmitShop handles POST /owner/shops.
func (h *OwnerHandler) SubmitShop(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	input := new(usecase.ShopInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	shop, err := h.uc.SubmitShop(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusCreated, shop, "SHOP_SUBMITTED", "Shop submitted for review")
}

// ListShops handles GET /owner/shops?status=.
func (h *OwnerHandler) ListShops(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var status entity.ModerationStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := entity.ParseModerationStatus(raw)
		if err != nil {
			return err
		}
		status = parsed
	}

	shops, err := h.uc.ListOwnerShops(c.Request().Context(), identity.UserID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

package handler

import (
	"net/http"

	"shopseva/internal/delivery/http/response"
	"shopseva/internal/domain/entity"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves moderation, the contact inbox and the dashboard counters.
type AdminHandler struct {
	shops     usecase.ShopUsecase
	contact   usecase.ContactUsecase
	stats     usecase.StatsUsecase
	localizer *response.Localizer
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	shops usecase.ShopUsecase,
	contact usecase.ContactUsecase,
	stats usecase.StatsUsecase,
	localizer *response.Localizer,
) *AdminHandler {
	return &AdminHandler{shops: shops, contact: contact, stats: stats, localizer: localizer}
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type imageRequest struct {
	Image string `json:"image" validate:"required"`
}

// ListShops handles GET /admin/shops?status=, defaulting to the pending queue.
func (h *AdminHandler) ListShops(c echo.Context) error {
	status := entity.StatusPending
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := entity.ParseModerationStatus(raw)
		if err != nil {
			return err
		}
		status = parsed
	}

	shops, err := h.shops.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// ApproveShop handles POST /admin/shops/:id/approve.
func (h *AdminHandler) ApproveShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.shops.ApproveShop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, shop, "SHOP_APPROVED", "Shop approved")
}

// RejectShop handles POST /admin/shops/:id/reject. The body is optional.
func (h *AdminHandler) RejectShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	req := new(rejectRequest)
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, req); err != nil {
			return err
		}
	}

	shop, err := h.shops.RejectShop(c.Request().Context(), id, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, shop, "SHOP_REJECTED", "Shop rejected")
}

// UpdateShop handles PUT /admin/shops/:id.
func (h *AdminHandler) UpdateShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.ShopInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	shop, err := h.shops.UpdateShop(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, shop, "SHOP_UPDATED", "Shop updated")
}

// DeleteShop handles DELETE /admin/shops/:id.
func (h *AdminHandler) DeleteShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.shops.DeleteShop(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, nil, "SHOP_DELETED", "Shop deleted")
}

// AddImage handles POST /admin/shops/:id/images.
func (h *AdminHandler) AddImage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	req := new(imageRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	shop, err := h.shops.AddImage(c.Request().Context(), id, req.Image)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, shop, "SHOP_UPDATED", "Shop updated")
}

// RemoveImage handles DELETE /admin/shops/:id/images/:index.
func (h *AdminHandler) RemoveImage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	index, err := intParam(c, "index")
	if err != nil {
		return err
	}

	shop, err := h.shops.RemoveImage(c.Request().Context(), id, index)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, shop, "SHOP_UPDATED", "Shop updated")
}

// ListMessages handles GET /admin/messages.
func (h *AdminHandler) ListMessages(c echo.Context) error {
	messages, err := h.contact.ListMessages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// MarkMessageRead handles POST /admin/messages/:id/read.
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.contact.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, nil, "MESSAGE_READ", "Message marked as read")
}

// DeleteMessage handles DELETE /admin/messages/:id.
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.contact.DeleteMessage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, nil, "MESSAGE_DELETED", "Message deleted")
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

package handler

import (
	"net/http"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/delivery/http/response"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler serves likes and reviews.
type EngagementHandler struct {
	uc        usecase.EngagementUsecase
	localizer *response.Localizer
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase, localizer *response.Localizer) *EngagementHandler {
	return &EngagementHandler{uc: uc, localizer: localizer}
}

// Like handles POST /shops/:id/like.
func (h *EngagementHandler) Like(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.LikeShop(c.Request().Context(), id, deliverycontext.GetDeviceID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, result, "SHOP_LIKED", "Liked")
}

// Unlike handles DELETE /shops/:id/like.
func (h *EngagementHandler) Unlike(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.UnlikeShop(c.Request().Context(), id, deliverycontext.GetDeviceID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusOK, result, "SHOP_UNLIKED", "Unliked")
}

// ListLiked handles GET /shops/liked.
func (h *EngagementHandler) ListLiked(c echo.Context) error {
	shops, err := h.uc.ListLikedShops(c.Request().Context(), deliverycontext.GetDeviceID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// ListReviews handles GET /shops/:id/reviews.
func (h *EngagementHandler) ListReviews(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// SubmitReview handles POST /shops/:id/reviews for any signed-in caller.
func (h *EngagementHandler) SubmitReview(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.ReviewInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), identity, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusCreated, review, "REVIEW_ADDED", "Review added")
}

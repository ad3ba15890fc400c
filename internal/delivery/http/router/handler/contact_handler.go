package handler

import (
	"net/http"

	"shopseva/internal/delivery/http/response"
	"shopseva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	uc        usecase.ContactUsecase
	localizer *response.Localizer
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, localizer *response.Localizer) *ContactHandler {
	return &ContactHandler{uc: uc, localizer: localizer}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	input := new(usecase.ContactInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	msg, err := h.uc.SubmitMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.localizer.Success(c, http.StatusCreated, msg, "MESSAGE_SENT", "Message sent")
}

package middleware

import (
	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/constants"
	"shopseva/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// LanguageMiddleware negotiates the response language.
type LanguageMiddleware struct {
	translator service.Translator
}

// NewLanguageMiddleware creates a new language middleware
func NewLanguageMiddleware(translator service.Translator) *LanguageMiddleware {
	return &LanguageMiddleware{translator: translator}
}

// Process prefers the lang query parameter over Accept-Language.
func (m *LanguageMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requested := c.QueryParam(constants.QueryLanguage)
		if requested == "" {
			requested = c.Request().Header.Get(constants.HeaderLanguage)
		}

		lang := m.translator.Match(requested)
		deliverycontext.SetLanguage(c, lang)
		c.Response().Header().Set(constants.HeaderContentLanguage, lang)

		return next(c)
	}
}

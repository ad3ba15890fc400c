package context

import (
	"shopseva/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keyIdentity ContextKey = "identity"
	keyDeviceID ContextKey = "device_id"
	keyLanguage ContextKey = "language"
)

// SetIdentity stores the authenticated caller.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(keyIdentity), identity)
}

// GetIdentity returns the authenticated caller, if any.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(string(keyIdentity)).(entity.Identity)

	return identity, ok
}

// SetDeviceID stores the anonymous device key used for likes.
func SetDeviceID(c echo.Context, deviceID string) {
	c.Set(string(keyDeviceID), deviceID)
}

// GetDeviceID returns the device key, or "" when the header was absent.
func GetDeviceID(c echo.Context) string {
	id, _ := c.Get(string(keyDeviceID)).(string)

	return id
}

// SetLanguage stores the negotiated response language.
func SetLanguage(c echo.Context, lang string) {
	c.Set(string(keyLanguage), lang)
}

// GetLanguage returns the negotiated response language, or "" before negotiation.
func GetLanguage(c echo.Context) string {
	lang, _ := c.Get(string(keyLanguage)).(string)

	return lang
}

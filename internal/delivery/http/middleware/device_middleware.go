package middleware

import (
	"regexp"
	"strings"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/constants"
	domainerrors "shopseva/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Device ids become part of document keys, so path separators are not allowed.
var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// DeviceMiddleware reads the anonymous device key used for likes.
type DeviceMiddleware struct{}

// NewDeviceMiddleware creates a new device middleware
func NewDeviceMiddleware() *DeviceMiddleware {
	return &DeviceMiddleware{}
}

// Process stores a well-formed X-Device-Id header. An absent header is left to
// the handlers that need it; a malformed one is refused.
func (m *DeviceMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID := strings.TrimSpace(c.Request().Header.Get(constants.HeaderDeviceID))
		if deviceID == "" {
			return next(c)
		}
		if !deviceIDPattern.MatchString(deviceID) {
			return domainerrors.ErrDeviceIDMissing.WithDetails("malformed device identifier")
		}

		deliverycontext.SetDeviceID(c, deviceID)

		return next(c)
	}
}

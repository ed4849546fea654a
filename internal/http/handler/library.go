package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"docdraft/internal/storage"
)

// ListLibrary lists the media library under ?prefix=, or the configured prefix.
//
// @Summary  Browse the media library
// @Tags     library
// @Produce  json
// @Param    prefix query string false "key prefix"
// @Success  200 {object} map[string]interface{}
// @Failure  502 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /library [get]
func ListLibrary(lib storage.MediaLibrary, defaultPrefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if lib == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "LIBRARY_UNAVAILABLE", "media library is not configured")
		}
		prefix := c.Query("prefix", defaultPrefix)
		items, err := lib.List(c.UserContext(), prefix)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Str("prefix", prefix).Msg("media library listing failed")
			return writeError(c, fiber.StatusBadGateway, "LIBRARY_ERROR", "media library could not be listed")
		}
		if items == nil {
			items = []storage.ObjectInfo{}
		}
		return c.JSON(fiber.Map{"prefix": prefix, "items": items})
	}
}

package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campusdocs/internal/storage"
)

// ServeFile streams a stored PNG from dir. The file name comes from the :file route parameter.
func ServeFile(store storage.Storage, dir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("file")
		if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
		}

		rc, info, err := store.Get(c.UserContext(), dir+"/"+name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		ct := info.ContentType
		if ct == "" {
			ct = "image/png"
		}
		c.Set(fiber.HeaderContentType, ct)
		// Rendered files are never rewritten; every render gets a new name.
		c.Set(fiber.HeaderCacheControl, storage.ImmutableCacheControl)
		return c.SendStream(rc, int(info.Size))
	}
}

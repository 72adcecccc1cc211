package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired is a Fiber middleware that gates destructive routes behind a
// static shared secret carried in the admin-token header. On mismatch the
// request never reaches the handler.
func AdminRequired(securityKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("admin-token")

		// An unset secret keeps the route closed instead of matching the
		// empty header.
		if securityKey == "" || subtle.ConstantTimeCompare([]byte(token), []byte(securityKey)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied: invalid security key",
			})
		}
		return c.Next()
	}
}

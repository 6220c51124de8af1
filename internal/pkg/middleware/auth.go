package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPIAuth ensures a logged-in session for API routes and returns
// JSON 401 instead of a redirect. The handler body never runs for
// anonymous callers, so rejected requests have no side effects.
func RequireAPIAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "please log in first",
		})
	}
	return c.Next()
}

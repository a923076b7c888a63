package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// LoginPath is where anonymous browsers are sent.
const LoginPath = "/auth/login"

// RequireSession guards authenticated routes. Navigational requests are
// redirected to the login page; JSON and XHR callers get a 401 error body.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, max-age=0")
		if _, ok := SessionFromContext(c); ok {
			return c.Next()
		}
		if WantsJSON(c) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Redirect(LoginPath)
	}
}

// WantsJSON reports whether the client negotiated a JSON response rather
// than an HTML page.
func WantsJSON(c *fiber.Ctx) bool {
	if c.XHR() {
		return true
	}
	if c.Get(fiber.HeaderAccept) == "" {
		return false
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

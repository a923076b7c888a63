package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/web"
)

func page(c *fiber.Ctx, title string) web.Page {
	s, _ := auth.SessionFromContext(c)
	return web.Page{Title: title, User: s}
}

// RenderNotFound renders the 404 page with status 404.
func RenderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render(web.PageNotFound, web.NotFoundView{Page: page(c, "Not found")})
}

// RenderError renders the generic error page.
func RenderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render(web.PageError, web.ErrorView{
		Page:    page(c, "Error"),
		Status:  status,
		Message: message,
	})
}

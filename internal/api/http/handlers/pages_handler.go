package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/service"
	"github.com/spec-kit/ticketapp/internal/web"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// PagesHandler serves the landing page, the dashboard and the 404 fallback.
type PagesHandler struct {
	tickets *service.TicketService
}

// NewPagesHandler constructs handler.
func NewPagesHandler(ticketService *service.TicketService) *PagesHandler {
	return &PagesHandler{tickets: ticketService}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	if _, ok := auth.SessionFromContext(c); ok {
		return c.Redirect("/dashboard")
	}
	return c.Render(web.PageLanding, web.LandingView{Page: page(c, "Welcome")})
}

// Dashboard handles GET /dashboard.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	stats, err := h.tickets.Stats(c.UserContext(), current.UserID)
	if err != nil {
		return err
	}
	return c.Render(web.PageDashboard, web.DashboardView{Page: page(c, "Dashboard"), Stats: stats})
}

// NotFound terminates the chain for unmatched routes.
func (h *PagesHandler) NotFound(c *fiber.Ctx) error {
	return apperrors.NewNotFound("Page", nil)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticketapp/internal/api/dto"
	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/service"
	"github.com/spec-kit/ticketapp/internal/web"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// TicketsHandler manages the caller's tickets.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// List handles GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	tickets, stats, err := h.service.Overview(c.UserContext(), current.UserID)
	if err != nil {
		return err
	}
	return c.Render(web.PageTicketList, web.TicketListView{
		Page:    page(c, "Tickets"),
		Tickets: tickets,
		Stats:   stats,
	})
}

// CreateForm handles GET /tickets/create.
func (h *TicketsHandler) CreateForm(c *fiber.Ctx) error {
	form := web.TicketFormValues{
		Status:   string(domain.TicketStatusOpen),
		Priority: string(domain.TicketPriorityMedium),
	}
	return c.Render(web.PageTicketCreate, web.NewTicketFormView(page(c, "New ticket"), "", form))
}

// Create handles POST /tickets/create.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	form, err := parseTicketForm(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Create(c.UserContext(), current.UserID, ticketInput(form)); err != nil {
		if !apperrors.HasCode(err, apperrors.CodeValidation) {
			return err
		}
		view := web.NewTicketFormView(page(c, "New ticket"), "", formValues(form))
		view.Error = apperrors.ToDomainError(err).Message
		return c.Render(web.PageTicketCreate, view)
	}
	return c.Redirect("/tickets")
}

// EditForm handles GET /tickets/edit/:id.
func (h *TicketsHandler) EditForm(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	ticket, err := h.service.Get(c.UserContext(), current.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	view := web.NewTicketFormView(page(c, "Edit ticket"), ticket.ID, web.FormValuesFromTicket(ticket))
	return c.Render(web.PageTicketEdit, view)
}

// Update handles POST /tickets/edit/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	id := c.Params("id")
	form, err := parseTicketForm(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Update(c.UserContext(), current.UserID, id, ticketInput(form)); err != nil {
		if !apperrors.HasCode(err, apperrors.CodeValidation) {
			return err
		}
		view := web.NewTicketFormView(page(c, "Edit ticket"), id, formValues(form))
		view.Error = apperrors.ToDomainError(err).Message
		return c.Render(web.PageTicketEdit, view)
	}
	return c.Redirect("/tickets")
}

// Delete handles POST /tickets/delete/:id, POST /tickets/:id and
// DELETE /tickets/:id. It always answers with JSON.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	if err := h.service.Delete(c.UserContext(), current.UserID, c.Params("id")); err != nil {
		if !apperrors.HasCode(err, apperrors.CodeNotFound) {
			return err
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: apperrors.ToDomainError(err).Message})
	}
	return c.JSON(dto.DeleteResponse{Success: true})
}

// ListJSON handles GET /api/tickets.
func (h *TicketsHandler) ListJSON(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	tickets, stats, err := h.service.Overview(c.UserContext(), current.UserID)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(dto.TicketListResponse{Tickets: items, Stats: stats})
}

// StatsJSON handles GET /api/stats.
func (h *TicketsHandler) StatsJSON(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	stats, err := h.service.Stats(c.UserContext(), current.UserID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func parseTicketForm(c *fiber.Ctx) (dto.TicketForm, error) {
	var form dto.TicketForm
	if err := c.BodyParser(&form); err != nil {
		return form, apperrors.NewValidationError("invalid form", nil)
	}
	return form, nil
}

func ticketInput(form dto.TicketForm) service.TicketInput {
	return service.TicketInput{
		Title:       form.Title,
		Description: form.Description,
		Status:      domain.TicketStatus(form.Status),
		Priority:    domain.TicketPriority(form.Priority),
	}
}

func formValues(form dto.TicketForm) web.TicketFormValues {
	return web.TicketFormValues{
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
	}
}

package web

import (
	"github.com/spec-kit/ticketapp/internal/domain"
)

// Page carries the fields every template's layout reads.
type Page struct {
	Title string
	User  *domain.Session
}

// LandingView is rendered at /.
type LandingView struct {
	Page
}

// AuthView is rendered by the login and signup forms. Password is never
// echoed back.
type AuthView struct {
	Page
	Error string
	Name  string
	Email string
}

// DashboardView shows the caller's stats.
type DashboardView struct {
	Page
	Stats domain.TicketStats
}

// TicketListView shows the caller's tickets and stats.
type TicketListView struct {
	Page
	Tickets []domain.Ticket
	Stats   domain.TicketStats
}

// TicketFormValues are the values shown in the create and edit forms.
type TicketFormValues struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

// TicketFormView backs the create and edit forms.
type TicketFormView struct {
	Page
	Error      string
	TicketID   string
	Form       TicketFormValues
	Statuses   []domain.TicketStatus
	Priorities []domain.TicketPriority
}

// NewTicketFormView prepares a form with the selectable enum values.
func NewTicketFormView(page Page, ticketID string, form TicketFormValues) TicketFormView {
	return TicketFormView{
		Page:       page,
		TicketID:   ticketID,
		Form:       form,
		Statuses:   domain.TicketStatuses,
		Priorities: domain.TicketPriorities,
	}
}

// FormValuesFromTicket pre-fills a form with a stored ticket.
func FormValuesFromTicket(t *domain.Ticket) TicketFormValues {
	return TicketFormValues{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
	}
}

// NotFoundView is rendered for unknown pages and unowned tickets alike.
type NotFoundView struct {
	Page
}

// ErrorView is rendered for unexpected failures on HTML routes.
type ErrorView struct {
	Page
	Status  int
	Message string
}

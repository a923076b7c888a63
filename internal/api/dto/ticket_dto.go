package dto

import (
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// TicketForm is the create/edit form body.
type TicketForm struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Status      string `form:"status" json:"status"`
	Priority    string `form:"priority" json:"priority"`
}

// TicketResponse is the JSON view of a ticket.
type TicketResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	UserID      int64                 `json:"userId"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// TicketListResponse bundles tickets with their stats.
type TicketListResponse struct {
	Tickets []TicketResponse   `json:"tickets"`
	Stats   domain.TicketStats `json:"stats"`
}

// DeleteResponse acknowledges a deleted ticket.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the flat error body of the ticket JSON endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTicketResponse converts a domain ticket.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

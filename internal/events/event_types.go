package events

import (
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventUserLoggedOut  EventType = "user_logged_out"
	EventTicketCreated  EventType = "ticket_created"
	EventTicketUpdated  EventType = "ticket_updated"
	EventTicketDeleted  EventType = "ticket_deleted"
)

// AllTypes lists every event type, in declaration order.
var AllTypes = []EventType{
	EventUserRegistered,
	EventUserLoggedIn,
	EventUserLoggedOut,
	EventTicketCreated,
	EventTicketUpdated,
	EventTicketDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TicketChangedPayload describes a created or updated ticket.
type TicketChangedPayload struct {
	Title    string                `json:"title"`
	Status   domain.TicketStatus   `json:"status"`
	Priority domain.TicketPriority `json:"priority"`
}

// TicketUpdatedPayload records what an edit changed.
type TicketUpdatedPayload struct {
	Before TicketChangedPayload `json:"before"`
	After  TicketChangedPayload `json:"after"`
}

// UserPayload describes the account behind a user event.
type UserPayload struct {
	Email string `json:"email"`
}

// TicketSnapshot builds the payload for t.
func TicketSnapshot(t *domain.Ticket) TicketChangedPayload {
	return TicketChangedPayload{Title: t.Title, Status: t.Status, Priority: t.Priority}
}

package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates ticket urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// TicketStatuses lists the statuses offered by the ticket forms.
var TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed}

// TicketPriorities lists the priorities offered by the ticket forms.
var TicketPriorities = []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}

// Known reports whether the status is one of the three tracked buckets.
func (s TicketStatus) Known() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is a unit of work owned by exactly one user.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy returns the tickets whose owner is userID, preserving order.
func OwnedBy(tickets []Ticket, userID int64) []Ticket {
	owned := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned
}

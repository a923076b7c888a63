package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/repository"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

type demoUser struct {
	name, email string
}

var demoUsers = []demoUser{
	{"John Doe", "john@example.com"},
	{"Jane Smith", "jane@example.com"},
}

type demoTicket struct {
	owner       int
	title       string
	description string
	status      domain.TicketStatus
	priority    domain.TicketPriority
}

var demoTickets = []demoTicket{
	{0, "Fix login page issue", "Users cannot login", domain.TicketStatusOpen, domain.TicketPriorityHigh},
	{0, "Update documentation", "Docs need update", domain.TicketStatusInProgress, domain.TicketPriorityMedium},
	{1, "Add dark mode", "Dark mode toggle", domain.TicketStatusOpen, domain.TicketPriorityLow},
}

// SeedDemoData creates the demo accounts and tickets when the user store is
// empty. It reports whether anything was written.
func SeedDemoData(ctx context.Context, users repository.UserRepository, tickets repository.TicketRepository, bcryptCost int) (bool, error) {
	n, err := users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash demo password: %w", err)
	}

	created := make([]*domain.User, 0, len(demoUsers))
	for _, du := range demoUsers {
		user := &domain.User{Name: du.name, Email: du.email, PasswordHash: hash}
		if err := users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("seed user %s: %w", du.email, err)
		}
		created = append(created, user)
	}

	for _, dt := range demoTickets {
		ticket := &domain.Ticket{
			Title:       dt.title,
			Description: dt.description,
			Status:      dt.status,
			Priority:    dt.priority,
			UserID:      created[dt.owner].ID,
		}
		if err := tickets.Create(ctx, ticket); err != nil {
			return false, fmt.Errorf("seed ticket %q: %w", dt.title, err)
		}
	}
	return true, nil
}

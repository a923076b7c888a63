package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/repository"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// MsgTicketRequired is shown when a ticket form lacks title or status.
const MsgTicketRequired = "Title and status are required"

// TicketService coordinates ticket workflows. Every operation except Create
// is scoped to the caller; tickets of other users behave as if missing.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// TicketInput carries the editable ticket fields.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Normalize trims title, status and priority, applies defaults and checks required fields.
func (in TicketInput) Normalize() (TicketInput, error) {
	out := TicketInput{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      domain.TicketStatus(strings.TrimSpace(string(in.Status))),
		Priority:    domain.TicketPriority(strings.TrimSpace(string(in.Priority))),
	}
	if out.Priority == "" {
		out.Priority = domain.TicketPriorityMedium
	}

	missing := map[string]any{}
	if out.Title == "" {
		missing["title"] = "required"
	}
	if out.Status == "" {
		missing["status"] = "required"
	}
	if len(missing) > 0 {
		return out, apperrors.NewValidationError(MsgTicketRequired, missing)
	}
	return out, nil
}

// Create stores a new ticket owned by userID.
func (s *TicketService) Create(ctx context.Context, userID int64, input TicketInput) (*domain.Ticket, error) {
	in, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		UserID:      userID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		UserID:   userID,
		TicketID: ticket.ID,
		Payload:  events.TicketSnapshot(ticket),
	})
	return ticket, nil
}

// List returns the caller's tickets in creation order.
func (s *TicketService) List(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}

// Overview returns the caller's tickets together with their stats.
func (s *TicketService) Overview(ctx context.Context, userID int64) ([]domain.Ticket, domain.TicketStats, error) {
	tickets, err := s.List(ctx, userID)
	if err != nil {
		return nil, domain.TicketStats{}, err
	}
	return tickets, domain.ComputeStats(tickets), nil
}

// Stats returns per-status counts for the caller's tickets.
func (s *TicketService) Stats(ctx context.Context, userID int64) (domain.TicketStats, error) {
	_, stats, err := s.Overview(ctx, userID)
	return stats, err
}

// Get fetches one of the caller's tickets.
func (s *TicketService) Get(ctx context.Context, userID int64, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, mapTicketError(err)
	}
	return ticket, nil
}

// Update replaces the editable fields of one of the caller's tickets,
// keeping its id and owner.
func (s *TicketService) Update(ctx context.Context, userID int64, id string, input TicketInput) (*domain.Ticket, error) {
	before, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:          before.ID,
		UserID:      before.UserID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, mapTicketError(err)
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		UserID:   userID,
		TicketID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			Before: events.TicketSnapshot(before),
			After:  events.TicketSnapshot(ticket),
		},
	})
	return ticket, nil
}

// Delete removes one of the caller's tickets.
func (s *TicketService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.tickets.Delete(ctx, id, userID); err != nil {
		return mapTicketError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		UserID:   userID,
		TicketID: id,
	})
	return nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.now, event)
}

func mapTicketError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("Ticket", nil)
	}
	return apperrors.NewInternalError(err)
}

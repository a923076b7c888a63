package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// MemoryStore is the in-process Entity Store. It owns the user and ticket
// collections as insertion-ordered maps behind one lock, so every
// read-modify-write sequence (including id assignment) is serialized.
// Ids come from monotonic counters and are never reused after a delete.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users       map[int64]domain.User
	userOrder   []int64
	userByEmail map[string]int64
	lastUserID  int64

	tickets      map[string]domain.Ticket
	ticketOrder  []string
	lastTicketID int64
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:         time.Now,
		users:       make(map[int64]domain.User),
		userByEmail: make(map[string]int64),
		tickets:     make(map[string]domain.Ticket),
	}
}

// Users exposes the store as a UserRepository.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// Tickets exposes the store as a TicketRepository.
func (s *MemoryStore) Tickets() TicketRepository { return memoryTickets{s} }

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(_ context.Context, user *domain.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByEmail[user.Email]; taken {
		return ErrEmailTaken
	}
	s.lastUserID++
	user.ID = s.lastUserID
	user.CreatedAt = s.now()
	s.users[user.ID] = *user
	s.userOrder = append(s.userOrder, user.ID)
	s.userByEmail[user.Email] = user.ID
	return nil
}

func (r memoryUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (r memoryUsers) Count(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.userOrder), nil
}

type memoryTickets struct{ s *MemoryStore }

func (r memoryTickets) Create(_ context.Context, ticket *domain.Ticket) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTicketID++
	ticket.ID = strconv.FormatInt(s.lastTicketID, 10)
	now := s.now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	s.tickets[ticket.ID] = *ticket
	s.ticketOrder = append(s.ticketOrder, ticket.ID)
	return nil
}

func (r memoryTickets) Update(_ context.Context, ticket *domain.Ticket) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tickets[ticket.ID]
	if !ok || current.UserID != ticket.UserID {
		return ErrNotFound
	}
	current.Title = ticket.Title
	current.Description = ticket.Description
	current.Status = ticket.Status
	current.Priority = ticket.Priority
	current.UpdatedAt = s.now()
	s.tickets[ticket.ID] = current
	*ticket = current
	return nil
}

func (r memoryTickets) Delete(_ context.Context, id string, userID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tickets[id]
	if !ok || current.UserID != userID {
		return ErrNotFound
	}
	delete(s.tickets, id)
	for i, key := range s.ticketOrder {
		if key == id {
			s.ticketOrder = append(s.ticketOrder[:i], s.ticketOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r memoryTickets) GetForUser(_ context.Context, id string, userID int64) (*domain.Ticket, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[id]
	if !ok || ticket.UserID != userID {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r memoryTickets) ListByUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	s := r.s
	s.mu.RLock()
	all := make([]domain.Ticket, 0, len(s.ticketOrder))
	for _, id := range s.ticketOrder {
		all = append(all, s.tickets[id])
	}
	s.mu.RUnlock()
	return domain.OwnedBy(all, userID), nil
}

func (r memoryTickets) Count(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.ticketOrder), nil
}

package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/internal/session"
)

type fixture struct {
	store      *repository.MemoryStore
	sessions   *session.MemoryStore
	dispatcher events.Dispatcher
	published  *[]events.Event
	auth       *AuthService
	tickets    *TicketService
}

func testConfig() config.Config {
	return config.Config{
		Auth:    config.AuthConfig{SessionSecret: "test-secret", BcryptCost: bcrypt.MinCost},
		Session: config.SessionConfig{TTLMinutes: 60},
	}
}

func newFixture(t *testing.T, seed bool) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	sessions := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()

	published := &[]events.Event{}
	for _, et := range events.AllTypes {
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			*published = append(*published, e)
			return nil
		})
	}

	if seed {
		if _, err := SeedDemoData(context.Background(), store.Users(), store.Tickets(), bcrypt.MinCost); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	return &fixture{
		store:      store,
		sessions:   sessions,
		dispatcher: dispatcher,
		published:  published,
		auth: NewAuthService(testConfig(), AuthDependencies{
			UserRepo:   store.Users(),
			Sessions:   sessions,
			Dispatcher: dispatcher,
		}),
		tickets: NewTicketService(TicketDependencies{
			TicketRepo: store.Tickets(),
			Dispatcher: dispatcher,
		}),
	}
}

func ids(tickets []domain.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ticketapp/internal/api/dto"
	"github.com/spec-kit/ticketapp/internal/api/http/handlers"
	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/internal/service"
	"github.com/spec-kit/ticketapp/internal/session"
)

const cookieName = "ticketapp_session"

type testServer struct {
	t        *testing.T
	app      *fiber.App
	store    *repository.MemoryStore
	sessions *session.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	store := repository.NewMemoryStore()
	if _, err := service.SeedDemoData(ctx, store.Users(), store.Tickets(), bcrypt.MinCost); err != nil {
		t.Fatalf("seed: %v", err)
	}
	sessions := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()

	cfg := config.Config{
		App:     config.AppConfig{Name: "ticketapp", Version: "test"},
		Auth:    config.AuthConfig{SessionSecret: "test-secret", BcryptCost: bcrypt.MinCost},
		Session: config.SessionConfig{CookieName: cookieName, TTLMinutes: 60},
	}
	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:   store.Users(),
		Sessions:   sessions,
		Dispatcher: dispatcher,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: store.Tickets(),
		Dispatcher: dispatcher,
	})

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	cookie := auth.CookieConfig{Name: cookieName}

	app := NewApp(ServerConfig{AppName: cfg.App.Name, Logger: logger, Metrics: metrics}, RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, nil, nil, metrics),
		Pages:    handlers.NewPagesHandler(ticketService),
		Auth:     handlers.NewAuthHandler(authService, cookie, logger),
		Tickets:  handlers.NewTicketsHandler(ticketService),
		Sessions: auth.NewSessionMiddleware(authService.TokenManager(), sessions, cookie),
	})

	return &testServer{t: t, app: app, store: store, sessions: sessions}
}

type requestOption func(*nethttp.Request)

func withCookie(token string) requestOption {
	return func(r *nethttp.Request) {
		if token != "" {
			r.AddCookie(&nethttp.Cookie{Name: cookieName, Value: token})
		}
	}
}

func acceptJSON(r *nethttp.Request) {
	r.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
}

func xhr(r *nethttp.Request) {
	r.Header.Set(fiber.HeaderXRequestedWith, "XMLHttpRequest")
}

func (s *testServer) do(method, target string, form url.Values, opts ...requestOption) *nethttp.Response {
	s.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for _, opt := range opts {
		opt(req)
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	resp := s.do(fiber.MethodPost, "/auth/login", url.Values{"email": {email}, "password": {password}})
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/dashboard" {
		s.t.Fatalf("login %s: status %d location %q", email, resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}
	token := sessionCookie(resp)
	if token == "" {
		s.t.Fatalf("login %s: no session cookie", email)
	}
	return token
}

func (s *testServer) listJSON(token string) dto.TicketListResponse {
	s.t.Helper()
	resp := s.do(fiber.MethodGet, "/api/tickets", nil, withCookie(token), acceptJSON)
	if resp.StatusCode != fiber.StatusOK {
		s.t.Fatalf("GET /api/tickets: status %d", resp.StatusCode)
	}
	var out dto.TicketListResponse
	decodeJSON(s.t, resp, &out)
	return out
}

func sessionCookie(resp *nethttp.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	return ""
}

func readBody(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func decodeJSON(t *testing.T, resp *nethttp.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func responseIDs(list dto.TicketListResponse) []string {
	out := make([]string, 0, len(list.Tickets))
	for _, t := range list.Tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestLoginShowsOnlyOwnTickets(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodGet, "/tickets", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	for _, id := range []string{"1", "2"} {
		if !strings.Contains(body, `data-ticket-id="`+id+`"`) {
			t.Errorf("ticket %s missing from list", id)
		}
	}
	if strings.Contains(body, `data-ticket-id="3"`) {
		t.Error("ticket 3 belongs to another user but was listed")
	}
	if !strings.Contains(body, "Fix login page issue") {
		t.Error("ticket title not rendered")
	}
	if got := resp.Header.Get(fiber.HeaderCacheControl); !strings.Contains(got, "no-store") {
		t.Errorf("Cache-Control = %q", got)
	}

	list := srv.listJSON(token)
	if list.Stats.Total != 2 || list.Stats.Open != 1 || list.Stats.InProgress != 1 || list.Stats.Closed != 0 {
		t.Fatalf("stats = %+v", list.Stats)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	for _, form := range []url.Values{
		{"email": {"john@example.com"}, "password": {"wrong"}},
		{"email": {"nobody@example.com"}, "password": {service.DemoPassword}},
	} {
		resp := srv.do(fiber.MethodPost, "/auth/login", form)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if sessionCookie(resp) != "" {
			t.Fatal("failed login set a session cookie")
		}
		body := readBody(t, resp)
		if !strings.Contains(body, "Invalid credentials") {
			t.Fatal("error message not shown")
		}
		if !strings.Contains(body, `value="`+form.Get("email")+`"`) {
			t.Fatal("email not preserved")
		}
	}
	if srv.sessions.Len() != 0 {
		t.Fatalf("sessions = %d, want 0", srv.sessions.Len())
	}
}

func TestAnonymousAccessIsNegotiated(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/dashboard", "/tickets", "/tickets/create", "/tickets/edit/1"} {
		resp := srv.do(fiber.MethodGet, path, nil)
		if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != auth.LoginPath {
			t.Errorf("GET %s: status %d location %q", path, resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
		}
	}

	cases := []struct {
		name   string
		method string
		path   string
		opt    requestOption
	}{
		{"accept json", fiber.MethodGet, "/tickets", acceptJSON},
		{"xhr delete", fiber.MethodDelete, "/tickets/1", xhr},
		{"api stats", fiber.MethodGet, "/api/stats", acceptJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := srv.do(tc.method, tc.path, nil, tc.opt)
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			decodeJSON(t, resp, &body)
			if body.Error.Code != "UNAUTHORIZED" {
				t.Fatalf("code = %q", body.Error.Code)
			}
		})
	}

	if _, err := srv.store.Tickets().GetForUser(context.Background(), "1", 1); err != nil {
		t.Fatalf("anonymous delete removed ticket 1: %v", err)
	}
}

func TestForeignTicketIsNotFound(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodGet, "/tickets/edit/3", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("GET edit: status = %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "not found") {
		t.Fatal("404 page not rendered")
	}

	form := url.Values{"title": {"Hijacked"}, "status": {"closed"}}
	resp = srv.do(fiber.MethodPost, "/tickets/edit/3", form, withCookie(token))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("POST edit: status = %d", resp.StatusCode)
	}

	resp = srv.do(fiber.MethodPost, "/tickets/delete/3", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("POST delete: status = %d", resp.StatusCode)
	}
	var errBody dto.ErrorResponse
	decodeJSON(t, resp, &errBody)
	if errBody.Error != "Ticket not found" {
		t.Fatalf("error = %q", errBody.Error)
	}

	ticket, err := srv.store.Tickets().GetForUser(context.Background(), "3", 2)
	if err != nil {
		t.Fatalf("ticket 3: %v", err)
	}
	if ticket.Title != "Add dark mode" || ticket.Status != "open" {
		t.Fatalf("ticket 3 was modified: %+v", ticket)
	}

	resp = srv.do(fiber.MethodGet, "/tickets/edit/999", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing ticket: status = %d", resp.StatusCode)
	}
}

func TestDeleteThenCreateAssignsFreshID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodDelete, "/tickets/1", nil, withCookie(token), xhr)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: status = %d", resp.StatusCode)
	}
	var ok dto.DeleteResponse
	decodeJSON(t, resp, &ok)
	if !ok.Success {
		t.Fatal("success = false")
	}

	if got := responseIDs(srv.listJSON(token)); len(got) != 1 || got[0] != "2" {
		t.Fatalf("ids after delete = %v", got)
	}

	resp = srv.do(fiber.MethodPost, "/tickets/1", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete: status = %d", resp.StatusCode)
	}

	form := url.Values{"title": {"Investigate crash"}, "status": {"open"}}
	resp = srv.do(fiber.MethodPost, "/tickets/create", form, withCookie(token))
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/tickets" {
		t.Fatalf("create: status %d location %q", resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}

	list := srv.listJSON(token)
	if got := responseIDs(list); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Fatalf("ids after create = %v", got)
	}
	created := list.Tickets[1]
	if created.Priority != "medium" || created.Description != "" || created.UserID != 1 {
		t.Fatalf("created ticket = %+v", created)
	}
}

func TestCreateValidationKeepsInput(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	form := url.Values{"title": {"   "}, "description": {"keep this text"}, "status": {"open"}, "priority": {"high"}}
	resp := srv.do(fiber.MethodPost, "/tickets/create", form, withCookie(token))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, service.MsgTicketRequired) {
		t.Fatal("validation message missing")
	}
	if !strings.Contains(body, "keep this text") {
		t.Fatal("description not preserved")
	}

	n, err := srv.store.Tickets().Count(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}
}

func TestEditReplacesFields(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodGet, "/tickets/edit/2", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("edit form: status = %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, `value="Update documentation"`) {
		t.Fatal("edit form not pre-filled")
	}

	form := url.Values{"title": {"Docs refreshed"}, "description": {"done"}, "status": {"closed"}, "priority": {"low"}}
	resp = srv.do(fiber.MethodPost, "/tickets/edit/2", form, withCookie(token))
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("update: status = %d", resp.StatusCode)
	}

	list := srv.listJSON(token)
	if got := responseIDs(list); len(got) != 2 || got[1] != "2" {
		t.Fatalf("ids = %v", got)
	}
	updated := list.Tickets[1]
	if updated.Title != "Docs refreshed" || updated.Status != "closed" || updated.Priority != "low" || updated.UserID != 1 {
		t.Fatalf("updated = %+v", updated)
	}
	if list.Stats.Closed != 1 || list.Stats.InProgress != 0 {
		t.Fatalf("stats = %+v", list.Stats)
	}
}

func TestSignup(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	resp := srv.do(fiber.MethodPost, "/auth/signup", url.Values{
		"name": {"John Again"}, "email": {"john@example.com"}, "password": {"secret"},
	})
	if resp.StatusCode != fiber.StatusOK || sessionCookie(resp) != "" {
		t.Fatalf("duplicate signup: status %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, service.MsgUserExists) {
		t.Fatal("duplicate message missing")
	}
	if n, _ := srv.store.Users().Count(ctx); n != 2 {
		t.Fatalf("users = %d, want 2", n)
	}

	resp = srv.do(fiber.MethodPost, "/auth/signup", url.Values{
		"name": {"Sam Lee"}, "email": {"sam@example.com"}, "password": {"secret"},
	})
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/dashboard" {
		t.Fatalf("signup: status %d", resp.StatusCode)
	}
	token := sessionCookie(resp)
	if token == "" {
		t.Fatal("signup did not set a session cookie")
	}
	if n, _ := srv.store.Users().Count(ctx); n != 3 {
		t.Fatalf("users = %d, want 3", n)
	}

	list := srv.listJSON(token)
	if len(list.Tickets) != 0 || list.Stats.Total != 0 {
		t.Fatalf("new user sees %+v", list)
	}

	resp = srv.do(fiber.MethodGet, "/dashboard", nil, withCookie(token))
	if body := readBody(t, resp); !strings.Contains(body, "Sam Lee") {
		t.Fatal("dashboard does not greet the new user")
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	srv := newTestServer(t)
	first := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodPost, "/auth/login",
		url.Values{"email": {"jane@example.com"}, "password": {service.DemoPassword}}, withCookie(first))
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	second := sessionCookie(resp)
	if srv.sessions.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", srv.sessions.Len())
	}

	if got := responseIDs(srv.listJSON(second)); len(got) != 1 || got[0] != "3" {
		t.Fatalf("jane ids = %v", got)
	}
	resp = srv.do(fiber.MethodGet, "/dashboard", nil, withCookie(first))
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("old session still valid: status %d", resp.StatusCode)
	}
}

func TestLogout(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login("john@example.com", service.DemoPassword)

	resp := srv.do(fiber.MethodGet, "/auth/logout", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/" {
		t.Fatalf("logout: status %d location %q", resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}
	if srv.sessions.Len() != 0 {
		t.Fatalf("sessions = %d, want 0", srv.sessions.Len())
	}

	resp = srv.do(fiber.MethodGet, "/dashboard", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != auth.LoginPath {
		t.Fatalf("after logout: status %d", resp.StatusCode)
	}

	resp = srv.do(fiber.MethodGet, "/auth/logout", nil)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("anonymous logout: status %d", resp.StatusCode)
	}
}

func TestHomeAndFallback(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(fiber.MethodGet, "/", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("landing: status %d", resp.StatusCode)
	}

	token := srv.login("john@example.com", service.DemoPassword)
	resp = srv.do(fiber.MethodGet, "/", nil, withCookie(token))
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/dashboard" {
		t.Fatalf("home with session: status %d", resp.StatusCode)
	}

	resp = srv.do(fiber.MethodGet, "/no/such/page", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("fallback: status %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "not found") {
		t.Fatal("404 page not rendered")
	}

	resp = srv.do(fiber.MethodGet, "/no/such/page", nil, acceptJSON)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("json fallback: status %d", resp.StatusCode)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeJSON(t, resp, &body)
	if body.Error.Code != "NOT_FOUND" {
		t.Fatalf("code = %q", body.Error.Code)
	}
}

func TestForgedCookieIsAnonymous(t *testing.T) {
	srv := newTestServer(t)
	resp := srv.do(fiber.MethodGet, "/tickets", nil, withCookie("not-a-token"))
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get(fiber.HeaderLocation) != auth.LoginPath {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(fiber.MethodGet, "/health/live", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("live: status %d", resp.StatusCode)
	}

	resp = srv.do(fiber.MethodGet, "/health/ready", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("ready: status %d", resp.StatusCode)
	}
	var ready struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	decodeJSON(t, resp, &ready)
	if ready.Status != "ready" || ready.Dependencies["postgres"] != "disabled" || ready.Dependencies["redis"] != "disabled" {
		t.Fatalf("ready = %+v", ready)
	}

	resp = srv.do(fiber.MethodGet, "/health/metrics", nil)
	var snap observability.MetricsSnapshot
	decodeJSON(t, resp, &snap)
	if len(snap.Requests) == 0 {
		t.Fatal("no requests recorded")
	}
}

func TestStoredValuesSurviveLaterRequests(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	token := srv.login("john@example.com", service.DemoPassword)

	title := "Original-title-" + strings.Repeat("A", 48)
	form := url.Values{"title": {title}, "description": {"first body"}, "status": {"open"}, "priority": {"high"}}
	resp := srv.do(fiber.MethodPost, "/tickets/create", form, withCookie(token))
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("create: status %d", resp.StatusCode)
	}

	for i := 0; i < 20; i++ {
		rejected := url.Values{
			"title":       {""},
			"description": {strings.Repeat("z", 40)},
			"status":      {"zzzz"},
			"priority":    {"zzzz"},
		}
		srv.do(fiber.MethodPost, "/tickets/create", rejected, withCookie(token))
		srv.do(fiber.MethodPost, "/auth/signup", url.Values{
			"name": {"Mallo"}, "email": {"zzzzz@example.com"}, "password": {""},
		})
	}

	list := srv.listJSON(token)
	created := list.Tickets[len(list.Tickets)-1]
	if created.ID != "4" || created.Title != title || created.Description != "first body" ||
		created.Status != "open" || created.Priority != "high" {
		t.Fatalf("stored ticket changed: %+v", created)
	}

	user, err := srv.store.Users().GetByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("lookup by email: %v", err)
	}
	if user.Name != "John Doe" {
		t.Fatalf("user name = %q", user.Name)
	}
}

func TestSignedUpUserSurvivesRejectedSignup(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	resp := srv.do(fiber.MethodPost, "/auth/signup", url.Values{
		"name": {"Alice"}, "email": {"alice@example.com"}, "password": {"secret"},
	})
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("signup: status %d", resp.StatusCode)
	}
	token := sessionCookie(resp)

	resp = srv.do(fiber.MethodPost, "/auth/signup", url.Values{
		"name": {"Mallo"}, "email": {"zzzzz@example.com"}, "password": {""},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("rejected signup: status %d", resp.StatusCode)
	}

	user, err := srv.store.Users().GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("user 3: %v", err)
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Fatalf("user 3 = %+v", user)
	}
	if _, err := srv.store.Users().GetByEmail(ctx, "alice@example.com"); err != nil {
		t.Fatalf("email index lost alice: %v", err)
	}

	resp = srv.do(fiber.MethodGet, "/dashboard", nil, withCookie(token))
	if body := readBody(t, resp); !strings.Contains(body, "Alice") {
		t.Fatal("session snapshot lost the user name")
	}
}

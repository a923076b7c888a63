package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/session"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

const sessionKey = "auth_session"

// SessionMiddleware resolves the session cookie into a *domain.Session on
// the request. It never rejects a request: a missing, forged, or expired
// cookie simply leaves the request anonymous.
type SessionMiddleware struct {
	tokens   *TokenManager
	sessions session.Store
	cookie   CookieConfig
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions session.Store, cookie CookieConfig) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, sessions: sessions, cookie: cookie}
}

// Handle loads the session, if any, and continues the chain.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(m.cookie.Name)
	if raw == "" {
		return c.Next()
	}

	sessionID, err := m.tokens.ParseToken(raw)
	if err != nil {
		ClearSessionCookie(c, m.cookie)
		return c.Next()
	}

	s, err := m.sessions.Get(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			ClearSessionCookie(c, m.cookie)
			return c.Next()
		}
		return apperrors.MapError(err)
	}

	c.Locals(sessionKey, s)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	s, ok := val.(*domain.Session)
	return s, ok && s != nil
}

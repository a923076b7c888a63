package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/internal/session"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// Messages shown on the auth forms.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserExists         = "User already exists"
	MsgSignupRequired     = "Name, email and password are required"
)

// AuthService coordinates signup, login and logout.
type AuthService struct {
	users      repository.UserRepository
	sessions   session.Store
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	sessionTTL time.Duration
	now        func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Sessions   session.Store
	Dispatcher events.Dispatcher
}

// SessionGrant is the result of a successful login or signup: the stored
// session plus the signed token for the cookie.
type SessionGrant struct {
	Session *domain.Session
	Token   string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.SessionSecret),
		bcryptCost: cfg.Auth.BcryptCost,
		sessionTTL: cfg.Session.TTL(),
		now:        time.Now,
	}
}

// Signup creates an account and starts a session for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*SessionGrant, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError(MsgSignupRequired, nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict(MsgUserExists, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperrors.NewConflict(MsgUserExists, nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		UserID:  user.ID,
		Payload: events.UserPayload{Email: user.Email},
	})
	return s.startSession(ctx, user)
}

// Login checks the credentials and starts a session. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*SessionGrant, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewAuthenticationError(MsgInvalidCredentials)
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewAuthenticationError(MsgInvalidCredentials)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserLoggedIn,
		UserID:  user.ID,
		Payload: events.UserPayload{Email: user.Email},
	})
	return s.startSession(ctx, user)
}

// Logout destroys the session. Destroying an unknown session is not an error.
func (s *AuthService) Logout(ctx context.Context, current *domain.Session) error {
	if current == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, current.ID); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.Event{Type: events.EventUserLoggedOut, UserID: current.UserID})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*SessionGrant, error) {
	now := s.now()
	sess := domain.NewSession(uuid.NewString(), user, now, s.sessionTTL)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	token, err := s.tokenMgr.GenerateToken(sess.ID, now, sess.ExpiresAt)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &SessionGrant{Session: sess, Token: token}, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.now, event)
}

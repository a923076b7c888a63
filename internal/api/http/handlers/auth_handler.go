package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/api/dto"
	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/service"
	"github.com/spec-kit/ticketapp/internal/web"
	apperrors "github.com/spec-kit/ticketapp/pkg/util/errorutil"
)

// AuthHandler serves the login, signup and logout flows.
type AuthHandler struct {
	auth   *service.AuthService
	cookie auth.CookieConfig
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie auth.CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookie, logger: logger}
}

// LoginForm handles GET /auth/login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render(web.PageLogin, web.AuthView{Page: page(c, "Login")})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form", nil)
	}

	grant, err := h.auth.Login(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if !apperrors.HasCode(err, apperrors.CodeInvalidCredentials) {
			return err
		}
		h.logger.Debug("login rejected", zap.String("email", form.Email))
		return c.Render(web.PageLogin, web.AuthView{
			Page:  page(c, "Login"),
			Error: apperrors.ToDomainError(err).Message,
			Email: form.Email,
		})
	}
	return h.startSession(c, grant)
}

// SignupForm handles GET /auth/signup.
func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return c.Render(web.PageSignup, web.AuthView{Page: page(c, "Sign up")})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var form dto.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form", nil)
	}

	grant, err := h.auth.Signup(c.UserContext(), form.Name, form.Email, form.Password)
	if err != nil {
		if !apperrors.HasCode(err, apperrors.CodeConflict) && !apperrors.HasCode(err, apperrors.CodeValidation) {
			return err
		}
		return c.Render(web.PageSignup, web.AuthView{
			Page:  page(c, "Sign up"),
			Error: apperrors.ToDomainError(err).Message,
			Name:  form.Name,
			Email: form.Email,
		})
	}
	return h.startSession(c, grant)
}

// Logout handles GET /auth/logout. Anonymous callers are simply redirected.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if current, ok := auth.SessionFromContext(c); ok {
		if err := h.auth.Logout(c.UserContext(), current); err != nil {
			return err
		}
	}
	auth.ClearSessionCookie(c, h.cookie)
	return c.Redirect("/")
}

// startSession replaces any previous session with the granted one.
func (h *AuthHandler) startSession(c *fiber.Ctx, grant *service.SessionGrant) error {
	if previous, ok := auth.SessionFromContext(c); ok {
		if err := h.auth.Logout(c.UserContext(), previous); err != nil {
			h.logger.Warn("failed to destroy previous session", zap.Error(err))
		}
	}
	auth.SetSessionCookie(c, h.cookie, grant.Token, grant.Session.ExpiresAt)
	return c.Redirect("/dashboard")
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/api/http/handlers"
	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/web"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Pages    *handlers.PagesHandler
	Auth     *handlers.AuthHandler
	Tickets  *handlers.TicketsHandler
	Sessions *auth.SessionMiddleware
}

// ServerConfig carries the app-level settings used by NewApp.
type ServerConfig struct {
	AppName        string
	RequestTimeout time.Duration
	Logger         *zap.Logger
	Metrics        *observability.Metrics
}

// NewApp builds the Fiber app with views, middlewares and routes.
func NewApp(cfg ServerConfig, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Immutable:             true,
		Views:                 web.NewEngine(),
		ViewsLayout:           web.LayoutMain,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, cfg.Logger, cfg.Metrics, cfg.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Use(cfg.Sessions.Handle)
	requireSession := auth.RequireSession()

	app.Get("/", cfg.Pages.Home)

	authGroup := app.Group("/auth")
	authGroup.Get("/login", cfg.Auth.LoginForm)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/signup", cfg.Auth.SignupForm)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Get("/logout", cfg.Auth.Logout)

	app.Get("/dashboard", requireSession, cfg.Pages.Dashboard)

	tickets := app.Group("/tickets", requireSession)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/create", cfg.Tickets.CreateForm)
	tickets.Post("/create", cfg.Tickets.Create)
	tickets.Get("/edit/:id", cfg.Tickets.EditForm)
	tickets.Post("/edit/:id", cfg.Tickets.Update)
	tickets.Post("/delete/:id", cfg.Tickets.Delete)
	tickets.Post("/:id", cfg.Tickets.Delete)
	tickets.Delete("/:id", cfg.Tickets.Delete)

	api := app.Group("/api", requireSession)
	api.Get("/tickets", cfg.Tickets.ListJSON)
	api.Get("/stats", cfg.Tickets.StatsJSON)

	app.Use(cfg.Pages.NotFound)
}

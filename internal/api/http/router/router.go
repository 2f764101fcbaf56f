package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/authcore/internal/api/http/handler"
	"github.com/dtroode/authcore/internal/api/http/middleware"
	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/model"
)

// Params are the collaborators the router wires into handlers.
type Params struct {
	AuthService    handler.AuthService
	Authenticator  middleware.TokenAuthenticator
	ContextManager model.ContextManager
	Cookie         handler.CookieSettings
	HealthChecks   map[string]handler.HealthCheck
	Observer       middleware.RequestObserver
	Metrics        http.Handler
	Logger         *logger.Logger
}

// Router builds the HTTP handler tree.
type Router struct {
	params Params
}

func New(params Params) *Router {
	return &Router{params: params}
}

// Register returns the root handler with every route mounted.
func (rt *Router) Register() http.Handler {
	p := rt.params
	logging := middleware.NewLogging(p.Logger, p.Observer)
	authenticate := middleware.NewAuthenticate(p.Authenticator, p.ContextManager, p.Logger)
	authHandler := handler.NewAuth(p.AuthService, p.ContextManager, p.Cookie, p.Logger)
	health := handler.NewHealth(p.HealthChecks, p.Logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(logging.Handle)
	r.Use(chimw.Recoverer)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/sign-up-request", authHandler.SignUpRequest)
		r.Post("/sign-up", authHandler.SignUp)
		r.Post("/sign-in", authHandler.SignIn)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
		r.Post("/reset-password", authHandler.ResetPassword)
		r.Post("/create-new-password", authHandler.CreateNewPassword)
		r.With(authenticate.Handle).Get("/session", authHandler.Session)
	})

	r.Get("/healthz", health.Check)
	if p.Metrics != nil {
		r.Handle("/metrics", p.Metrics)
	}

	return r
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yogastudio/yoga-api/internal/middleware"
)

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Logger     *slog.Logger
	Tokens     middleware.TokenVerifier
	Identities middleware.IdentityLoader
	// AuthLimiter wraps the /api/auth routes; nil disables rate limiting.
	AuthLimiter func(http.Handler) http.Handler

	Auth     *AuthHandler
	Sessions *SessionHandler
	Teachers *TeacherHandler
	Users    *UserHandler
}

// NewRouter builds the HTTP routes. Every request passes the authentication
// filter; everything outside /api/auth and /health requires an identity.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Authenticate(cfg.Tokens, cfg.Identities))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.AuthLimiter != nil {
			r.Use(cfg.AuthLimiter)
		}
		r.Post("/api/auth/login", cfg.Auth.HandleLogin)
		r.Post("/api/auth/register", cfg.Auth.HandleRegister)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/api/session", cfg.Sessions.HandleList)
		r.Post("/api/session", cfg.Sessions.HandleCreate)
		r.Get("/api/session/{id}", cfg.Sessions.HandleGet)
		r.Put("/api/session/{id}", cfg.Sessions.HandleUpdate)
		r.Delete("/api/session/{id}", cfg.Sessions.HandleDelete)
		r.Post("/api/session/{id}/participate/{userId}", cfg.Sessions.HandleParticipate)
		r.Delete("/api/session/{id}/participate/{userId}", cfg.Sessions.HandleNoLongerParticipate)

		r.Get("/api/teacher", cfg.Teachers.HandleList)
		r.Get("/api/teacher/{id}", cfg.Teachers.HandleGet)

		r.Get("/api/user/{id}", cfg.Users.HandleGet)
		r.Delete("/api/user/{id}", cfg.Users.HandleDelete)
	})

	return r
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/metrics"
	"github.com/heartmarshall/wordassist-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Landing   *LandingHandler
	Entries   *EntryHandler
	Search    *SearchHandler
	TagAdmin  *TagAdminHandler
	UserAdmin *UserAdminHandler
}

// RouterDeps holds the cross-cutting pieces of the router.
type RouterDeps struct {
	Gate        config.GateConfig
	RateLimit   config.RateLimitConfig
	Limiter     *middleware.RateLimiter
	Recovery    middleware.Middleware
	CORS        middleware.Middleware
	Auth        middleware.Middleware
	Logger      middleware.Middleware
	MetricsPath string
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID,
		d.Recovery,
		metrics.Middleware(),
		d.CORS,
		d.Auth,
		d.Logger,
	))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Handle(d.MetricsPath, promhttp.Handler())

	authenticated := middleware.Authenticated(d.Gate.LoginPath)
	adminOnly := middleware.AdminOnly(d.Gate.LoginPath, d.Gate.LandingPath)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute))
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Get("/login", h.Auth.LoginRequired)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Get("/assist", h.Landing.Assist)
			r.Get("/tags", h.Search.Tags)
			r.Get("/search", h.Search.Search)
			r.Post("/search", h.Search.SearchBody)

			r.Route("/entries", func(r chi.Router) {
				r.With(d.Limiter.Limit("draft", d.RateLimit.DraftPerMinute)).Post("/draft", h.Entries.Draft)
				r.Get("/draft/{token}", h.Entries.GetDraft)
				r.Delete("/draft/{token}", h.Entries.AbandonDraft)
				r.Post("/", h.Entries.Commit)
				r.Get("/{id}", h.Entries.Get)
				r.Put("/{id}", h.Entries.Edit)
				r.Delete("/{id}", h.Entries.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", h.Landing.Admin)

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", h.TagAdmin.List)
				r.Post("/", h.TagAdmin.Create)
				r.Put("/{id}", h.TagAdmin.Rename)
				r.Delete("/{id}", h.TagAdmin.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.UserAdmin.List)
				r.Post("/", h.UserAdmin.Create)
				r.Put("/{id}", h.UserAdmin.Update)
				r.Delete("/{id}", h.UserAdmin.Delete)
			})
		})
	})

	return r
}

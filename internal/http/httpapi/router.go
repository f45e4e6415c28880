package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"aidhub/internal/domain"
	"aidhub/internal/http/handlers"
	"aidhub/internal/metrics"
	"aidhub/internal/middleware"
)

// Options configures the cross-cutting middleware stack.
type Options struct {
	Logger          zerolog.Logger
	Tokens          middleware.TokenVerifier
	Users           middleware.UserLookup
	CORSOrigins     []string
	RateLimitPerMin int
	RequestTimeout  time.Duration
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		metrics.Instrument,
		middleware.CORS(opts.CORSOrigins),
		middleware.MethodOverride,
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute, app.Deny),
	)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/healthz", app.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	authn := middleware.AuthJWT(opts.Tokens, opts.Users, app.Deny)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Post("/auth/register", app.Register)
		r.Post("/auth/login", app.Login)
		r.Get("/categories", app.ListCategories)
		r.Get("/stats", app.StatsSummary)
		r.Get("/requests", app.ListRequests)
		r.Get("/requests/{id}", app.GetRequest)
		r.Get("/requests/{id}/comments", app.ListComments)

		r.Group(func(r chi.Router) {
			r.Use(authn)

			r.Get("/auth/profile", app.Profile)
			r.Put("/auth/profile", app.UpdateProfile)
			r.Put("/requests/{id}", app.UpdateRequest)
			r.Patch("/requests/{id}", app.UpdateRequest)
			r.Put("/requests/{id}/status", app.UpdateRequestStatus)
			r.Post("/requests/{id}/comments", app.AddComment)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleRequester, app.Deny))
				r.Post("/requests", app.CreateRequest)
				r.Get("/myrequests", app.MyRequests)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleVolunteer, app.Deny))
				r.Put("/requests/{id}/assign", app.AssignRequest)
				r.Get("/assignedrequests", app.AssignedRequests)
			})
		})
	})

	return r
}

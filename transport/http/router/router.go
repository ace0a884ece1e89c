package router

import (
	"chore/config"
	"chore/internal/handlers/auth"
	"chore/internal/handlers/health"
	"chore/internal/handlers/home"
	"chore/internal/handlers/todo"
	"chore/transport/http/middleware"
	"chore/transport/http/response"
	"chore/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Home   home.Handler
	Auth   auth.Handler
	Todo   todo.Handler
	Health health.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

// SetupRoutes installs the middleware chain and every route. The session is resolved
// before the gate so the gate can tell anonymous requests apart.
func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		r.App.Tracing,
		r.App.RateLimit(),
		r.Auth.Session,
		r.Auth.Gate,
	)

	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		caller, _ := middleware.CallerFrom(req.Context())

		response.WithView(w, http.StatusNotFound, view.Home, view.Page{Username: caller.Username, Error: http.StatusText(http.StatusNotFound)})
	})

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Home.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(cfg *config.Config, domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}

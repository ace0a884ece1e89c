package health

import (
	"chore/infras/otel"
	"chore/infras/postgres"
	"chore/shared/cache"
	"chore/shared/constant"
	"chore/transport/http/response"
	"chore/transport/http/state"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	State    string `json:"state"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type Handler struct {
	database pinger
	cache    pinger
	server   *state.Server
	otel     otel.Otel
}

func New(database *postgres.Connection, cache cache.RedisCache, server *state.Server, otel otel.Otel) Handler {
	return Handler{
		database: database,
		cache:    cache,
		server:   server,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/healthz", handler.Health)
}

// Health answers 503 while the server drains or when a backing store is unreachable.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	switch handler.server.Get() {
	case state.ServerStateInGracePeriod, state.ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)

		return
	case state.ServerStateReady:
	default:
		response.WithUnhealthy(w)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := Status{
		State:    handler.server.Get().String(),
		Database: check(ctx, "database", handler.database),
		Cache:    check(ctx, "cache", handler.cache),
	}

	if status.Database != "up" || status.Cache != "up" {
		scope.SetAttributes(map[string]any{"health.database": status.Database, "health.cache": status.Cache})
		response.WithJSON(w, http.StatusServiceUnavailable, status)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

func check(ctx context.Context, name string, target pinger) string {
	if err := target.Ping(ctx); err != nil {
		log.Error().Err(err).Str("dependency", name).Msg("health check failed")

		return "down"
	}

	return "up"
}

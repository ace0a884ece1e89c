//go:build wireinject
// +build wireinject

package di

import (
	"chore/config"
	"chore/infras/jwt"
	"chore/infras/otel"
	"chore/infras/postgres"
	"chore/infras/redis"
	"chore/permissions"
	"chore/shared/cache"
	"chore/transport/http"
	"chore/transport/http/middleware"
	"chore/transport/http/router"
	"chore/transport/http/state"

	authService "chore/internal/domains/auth/service"
	todoRepository "chore/internal/domains/todo/repository"
	todoService "chore/internal/domains/todo/service"
	userRepository "chore/internal/domains/user/repository"
	authHandler "chore/internal/handlers/auth"
	healthHandler "chore/internal/handlers/health"
	homeHandler "chore/internal/handlers/home"
	todoHandler "chore/internal/handlers/todo"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	state.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	authHandler.New,
	todoHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

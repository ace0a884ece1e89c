package middleware

import (
	"chore/config"
	"chore/infras/otel"
	"chore/internal/domains/auth/model/dto"
	"chore/internal/domains/auth/service"
	"chore/permissions"
	"chore/shared/constant"
	"chore/shared/failure"
	"chore/transport/http/response"
	"chore/transport/http/view"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the session behind a request and keeps anonymous visitors out of
// routes that are not marked public.
type Auth interface {
	Session(next http.Handler) http.Handler
	Gate(next http.Handler) http.Handler
}

type authImpl struct {
	service    service.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(service service.Auth, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		service:    service,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Session loads the caller named by the session cookie into the request context.
// A cookie that no longer names a live session is cleared.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		cookie, err := request.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, "session.middleware")

		caller, err := m.service.CurrentCaller(ctx, cookie.Value)
		if err != nil {
			if !failure.Is(err, http.StatusUnauthorized) {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to resolve session")
			}

			scope.End()
			ClearSessionCookie(writer, m.cfg)
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("user.id", caller.ID)
		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserID, caller.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, caller.Username)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Gate renders the home page with a login prompt for anonymous requests to protected
// routes. Requests that match no route are passed on so the router can answer 404.
func (m *authImpl) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, ok := CallerFrom(request.Context()); ok {
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)
		if path == "" {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, "gate.middleware")
		scope.SetAttributes(map[string]any{
			"http.route":  path,
			"http.method": request.Method,
		})
		scope.TraceError(failure.Unauthorized(constant.MessageLoginFirst))
		scope.End()

		response.WithView(writer, http.StatusUnauthorized, view.Home, view.Page{Error: constant.MessageLoginFirst})
	})
}

// CallerFrom returns the caller stored by Session.
func CallerFrom(ctx context.Context) (dto.Caller, bool) {
	id, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || id == 0 {
		return dto.Caller{}, false
	}

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	return dto.Caller{ID: id, Username: username}, true
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

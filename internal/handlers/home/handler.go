package home

import (
	"chore/infras/otel"
	"chore/shared/constant"
	"chore/transport/http/middleware"
	"chore/transport/http/response"
	"chore/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
}

func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	caller, _ := middleware.CallerFrom(r.Context())

	response.WithView(w, http.StatusOK, view.Home, view.Page{Username: caller.Username})
}

package todo

import (
	"chore/infras/otel"
	authDto "chore/internal/domains/auth/model/dto"
	"chore/internal/domains/todo/model/dto"
	"chore/internal/domains/todo/service"
	"chore/shared/constant"
	"chore/shared/failure"
	"chore/shared/validator"
	"chore/transport/http/middleware"
	"chore/transport/http/response"
	"chore/transport/http/view"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathCurrent   = "/current"
	pathCompleted = "/completed"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/current", handler.CurrentTodos)
	router.Get("/completed", handler.CompletedTodos)
	router.Get("/create", handler.CreateForm)
	router.Post("/create", handler.CreateTodo)

	router.Get("/todo/{id}", handler.ViewTodo)
	router.Post("/todo/{id}", handler.UpdateTodo)
	router.Post("/todo/{id}/complete", handler.CompleteTodo)
	router.Post("/todo/{id}/delete", handler.DeleteTodo)
	router.Get("/completed/{id}", handler.ViewCompletedTodo)
	router.Post("/completed/{id}", handler.ReopenTodo)
}

func (handler *Handler) CurrentTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentTodos")
	defer scope.End()

	caller, _ := middleware.CallerFrom(ctx)
	page := view.Page{Title: "Current", Username: caller.Username}

	todos, err := handler.service.ListOpen(ctx, caller.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list current todos")

		fail(w, view.Current, page, err)

		return
	}

	page.Data = todos

	response.WithView(w, http.StatusOK, view.Current, page)
}

func (handler *Handler) CompletedTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompletedTodos")
	defer scope.End()

	caller, _ := middleware.CallerFrom(ctx)
	page := view.Page{Title: "Completed", Username: caller.Username}

	todos, err := handler.service.ListCompleted(ctx, caller.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list completed todos")

		fail(w, view.Completed, page, err)

		return
	}

	page.Data = todos

	response.WithView(w, http.StatusOK, view.Completed, page)
}

func (handler *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFrom(r.Context())

	response.WithView(w, http.StatusOK, view.Create, view.Page{Title: "Create", Username: caller.Username})
}

// CreateTodo re-renders the form with the submitted values when they are rejected.
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	caller, _ := middleware.CallerFrom(ctx)
	page := view.Page{Title: "Create", Username: caller.Username}

	req := dto.CreateTodoRequest{}

	if err := validator.DecodeForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode todo form")

		fail(w, view.Create, page, err)

		return
	}

	page.Data = req

	todo, err := handler.service.Create(ctx, caller.ID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		fail(w, view.Create, page, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + caller.Username)
	log.Debug().Int64("todo_id", todo.ID).Int64("user_id", caller.ID).Msg("todo created")

	response.WithRedirect(w, r, pathCurrent)
}

func (handler *Handler) ViewTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewTodo")
	defer scope.End()

	caller, page := callerPage(r)

	todo, err := handler.get(r.WithContext(ctx), caller)
	if err != nil {
		scope.TraceError(err)

		fail(w, view.ViewTodo, page, err)

		return
	}

	page.Title = todo.Title
	page.Data = todo

	response.WithView(w, http.StatusOK, view.ViewTodo, page)
}

// UpdateTodo overwrites every editable field with the submitted form.
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	caller, page := callerPage(r)

	id, err := parseID(r)
	if err != nil {
		fail(w, view.ViewTodo, page, err)

		return
	}

	req := dto.UpdateTodoRequest{}
	if err = validator.DecodeForm(r, &req); err == nil {
		_, err = handler.service.Update(ctx, caller.ID, id, req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("todo_id", id).Msg("failed to update todo")

		if current, getErr := handler.service.Get(ctx, caller.ID, id); getErr == nil {
			page.Title = current.Title
			page.Data = current
		}

		fail(w, view.ViewTodo, page, err)

		return
	}

	scope.AddEvent("Todo updated successfully by user " + caller.Username)

	response.WithRedirect(w, r, pathCurrent)
}

func (handler *Handler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteTodo")
	defer scope.End()

	caller, page := callerPage(r)

	id, err := parseID(r)
	if err == nil {
		_, err = handler.service.Complete(ctx, caller.ID, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete todo")

		fail(w, view.ViewTodo, page, err)

		return
	}

	scope.AddEvent("Todo completed by user " + caller.Username)

	response.WithRedirect(w, r, pathCurrent)
}

func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	caller, page := callerPage(r)

	id, err := parseID(r)
	if err == nil {
		err = handler.service.Delete(ctx, caller.ID, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete todo")

		fail(w, view.ViewTodo, page, err)

		return
	}

	scope.AddEvent("Todo deleted successfully by user " + caller.Username)

	response.WithRedirect(w, r, pathCurrent)
}

func (handler *Handler) ViewCompletedTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewCompletedTodo")
	defer scope.End()

	caller, page := callerPage(r)

	todo, err := handler.get(r.WithContext(ctx), caller)
	if err != nil {
		scope.TraceError(err)

		fail(w, view.ViewComplete, page, err)

		return
	}

	page.Title = todo.Title
	page.Data = todo

	response.WithView(w, http.StatusOK, view.ViewComplete, page)
}

func (handler *Handler) ReopenTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReopenTodo")
	defer scope.End()

	caller, page := callerPage(r)

	id, err := parseID(r)
	if err == nil {
		_, err = handler.service.Reopen(ctx, caller.ID, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reopen todo")

		fail(w, view.ViewComplete, page, err)

		return
	}

	scope.AddEvent("Todo reopened by user " + caller.Username)

	response.WithRedirect(w, r, pathCompleted)
}

func (handler *Handler) get(r *http.Request, caller authDto.Caller) (dto.TodoResponse, error) {
	id, err := parseID(r)
	if err != nil {
		return dto.TodoResponse{}, err
	}

	return handler.service.Get(r.Context(), caller.ID, id) //nolint:wrapcheck
}

func callerPage(r *http.Request) (authDto.Caller, view.Page) {
	caller, _ := middleware.CallerFrom(r.Context())

	return caller, view.Page{Username: caller.Username}
}

// parseID reads the todo id from the path. An id that is not a positive number can
// never match a row, so it is reported the same way as an unknown id.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.NotFound(constant.MessageInvalidRecord)
	}

	return id, nil
}

// fail re-renders name with a message describing err. Rejected input is shown with
// the validation detail, storage failures with a generic message.
func fail(w http.ResponseWriter, name string, page view.Page, err error) {
	code := failure.GetCode(err)

	switch code {
	case http.StatusBadRequest:
		page.Error = constant.MessageInvalidValues
		page.Detail = failure.Message(err, constant.Empty)
	case http.StatusInternalServerError:
		page.Error = constant.MessageSomethingWentWrong
	default:
		page.Error = failure.Message(err, constant.MessageSomethingWentWrong)
	}

	response.WithView(w, code, name, page)
}

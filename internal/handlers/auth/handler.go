package auth

import (
	"chore/config"
	"chore/infras/otel"
	"chore/internal/domains/auth/model/dto"
	"chore/internal/domains/auth/service"
	"chore/shared/constant"
	"chore/shared/failure"
	"chore/shared/validator"
	"chore/transport/http/middleware"
	"chore/transport/http/response"
	"chore/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathAfterLogin  = "/current"
	pathAfterLogout = "/"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/signup", handler.SignupForm)
	r.Post("/signup", handler.Signup)
	r.Get("/login", handler.LoginForm)
	r.Post("/login", handler.Login)
	r.Post("/logout", handler.Logout)
}

func (handler *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFrom(r.Context())

	response.WithView(w, http.StatusOK, view.Signup, view.Page{Title: "Sign Up", Username: caller.Username})
}

// Signup registers the account and logs it in straight away.
func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	req := dto.RegisterRequest{}
	page := view.Page{Title: "Sign Up"}

	if err := validator.DecodeForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode signup form")

		handler.fail(w, view.Signup, page, err)

		return
	}

	page.Data = dto.Account{Username: req.Username}

	account, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		handler.fail(w, view.Signup, page, err)

		return
	}

	if !handler.startSession(w, r, view.Signup, page, account) {
		return
	}

	scope.AddEvent("User registered successfully")

	response.WithRedirect(w, r, pathAfterLogin)
}

func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFrom(r.Context())

	response.WithView(w, http.StatusOK, view.Login, view.Page{Title: "Login", Username: caller.Username})
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	page := view.Page{Title: "Login"}

	if err := validator.DecodeForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode login form")

		handler.fail(w, view.Login, page, err)

		return
	}

	page.Data = dto.Account{Username: req.Username}

	account, err := handler.service.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)

		handler.fail(w, view.Login, page, err)

		return
	}

	if !handler.startSession(w, r, view.Login, page, account) {
		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithRedirect(w, r, pathAfterLogin)
}

// Logout revokes the session and clears the cookie. It succeeds even without a live session.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if cookie, err := r.Cookie(handler.cfg.Session.CookieName); err == nil && cookie.Value != "" {
		if err = handler.service.EndSession(ctx, cookie.Value); err != nil && !failure.Is(err, http.StatusUnauthorized) {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to end session")
		}
	}

	middleware.ClearSessionCookie(w, handler.cfg)

	response.WithRedirect(w, r, pathAfterLogout)
}

func (handler *Handler) startSession(w http.ResponseWriter, r *http.Request, name string, page view.Page, account dto.Account) bool {
	session, err := handler.service.StartSession(r.Context(), account)
	if err != nil {
		log.Error().Err(err).Int64("user_id", account.ID).Msg("failed to start session")

		handler.fail(w, name, page, err)

		return false
	}

	middleware.SetSessionCookie(w, handler.cfg, session)

	return true
}

func (handler *Handler) fail(w http.ResponseWriter, name string, page view.Page, err error) {
	page.Error = failure.Message(err, constant.MessageSomethingWentWrong)

	response.WithView(w, failure.GetCode(err), name, page)
}

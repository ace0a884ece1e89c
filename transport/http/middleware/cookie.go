package middleware

import (
	"chore/config"
	"chore/internal/domains/auth/model/dto"
	"net/http"
)

// SetSessionCookie stores the session token in an HttpOnly cookie that expires with the token.
func SetSessionCookie(writer http.ResponseWriter, cfg *config.Config, session dto.Session) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(writer http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

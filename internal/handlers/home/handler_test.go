package home_test

import (
	otelMocks "chore/infras/otel/mocks"
	"chore/internal/handlers/home"
	"chore/shared/constant"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	handler := home.New(otelMocks.NewOtel())

	r := chi.NewRouter()
	handler.Router(r)

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="/signup"`)
	})

	t.Run("logged in", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, int64(1))
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, "alice")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logout alice")
	})
}

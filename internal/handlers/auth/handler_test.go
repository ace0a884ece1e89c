package auth_test

import (
	"chore/config"
	otelMocks "chore/infras/otel/mocks"
	"chore/internal/domains/auth/mocks"
	"chore/internal/domains/auth/model/dto"
	"chore/internal/handlers/auth"
	"chore/shared/constant"
	"chore/shared/failure"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cookieName = "chore_session"

func setup(t *testing.T) (*mocks.MockAuth, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.CookieName = cookieName

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuth(ctrl)
	handler := auth.New(service, otelMocks.NewOtel(), cfg)

	r := chi.NewRouter()
	handler.Router(r)

	return service, r
}

func post(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}

	return nil
}

func TestForms(t *testing.T) {
	_, handler := setup(t)

	for _, path := range []string{"/signup", "/login"} {
		rec := serve(handler, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `action="`+path+`"`)
	}
}

func TestSignup(t *testing.T) {
	service, handler := setup(t)
	account := dto.Account{ID: 1, Username: "alice"}
	req := dto.RegisterRequest{Username: "alice", Password1: "correct horse", Password2: "correct horse"}

	gomock.InOrder(
		service.EXPECT().Register(gomock.Any(), req).Return(account, nil),
		service.EXPECT().StartSession(gomock.Any(), account).Return(dto.Session{Token: "signed", ExpiresIn: 3600}, nil),
	)

	rec := serve(handler, post("/signup", url.Values{
		"username":  {"alice"},
		"password1": {"correct horse"},
		"password2": {"correct horse"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/current", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSignupRejected(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "passwords differ",
			err:        failure.BadRequestFromString(constant.MessagePasswordMismatch),
			wantStatus: http.StatusBadRequest,
			wantBody:   constant.MessagePasswordMismatch,
		},
		{
			name:       "username taken",
			err:        failure.Conflict(constant.MessageUsernameTaken),
			wantStatus: http.StatusConflict,
			wantBody:   constant.MessageUsernameTaken,
		},
		{
			name:       "storage failure",
			err:        errors.New("dial tcp: refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   constant.MessageSomethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, handler := setup(t)
			service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(dto.Account{}, tt.err)

			rec := serve(handler, post("/signup", url.Values{
				"username":  {"alice"},
				"password1": {"correct horse"},
				"password2": {"battery staple"},
			}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Contains(t, rec.Body.String(), `value="alice"`)
			assert.Nil(t, sessionCookie(t, rec))
		})
	}
}

func TestLogin(t *testing.T) {
	service, handler := setup(t)
	account := dto.Account{ID: 1, Username: "alice"}

	gomock.InOrder(
		service.EXPECT().Authenticate(gomock.Any(), dto.LoginRequest{Username: "alice", Password: "correct horse"}).Return(account, nil),
		service.EXPECT().StartSession(gomock.Any(), account).Return(dto.Session{Token: "signed", ExpiresIn: 60}, nil),
	)

	rec := serve(handler, post("/login", url.Values{"username": {"alice"}, "password": {"correct horse"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/current", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookie(t, rec))
}

func TestLoginMismatch(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(dto.Account{}, failure.BadRequestFromString(constant.MessageLoginMismatch))

	rec := serve(handler, post("/login", url.Values{"username": {"alice"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageLoginMismatch)
	assert.Nil(t, sessionCookie(t, rec))
}

func TestLoginSessionStoreDown(t *testing.T) {
	service, handler := setup(t)
	account := dto.Account{ID: 1, Username: "alice"}

	service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(account, nil)
	service.EXPECT().StartSession(gomock.Any(), account).Return(dto.Session{}, errors.New("redis down"))

	rec := serve(handler, post("/login", url.Values{"username": {"alice"}, "password": {"correct horse"}}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageSomethingWentWrong)
}

func TestLogout(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		service, handler := setup(t)
		service.EXPECT().EndSession(gomock.Any(), "signed").Return(nil)

		req := post("/logout", url.Values{})
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "signed"})

		rec := serve(handler, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("without session", func(t *testing.T) {
		_, handler := setup(t)

		rec := serve(handler, post("/logout", url.Values{}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("get is not allowed", func(t *testing.T) {
		_, handler := setup(t)

		rec := serve(handler, httptest.NewRequest(http.MethodGet, "/logout", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

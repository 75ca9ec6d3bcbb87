package middlewares

import (
	"halo-service/internal/app/config"
	"halo-service/internal/app/mocks"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func sessionEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if ok {
			w.Header().Set("X-User", session.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	sessionService := new(mocks.MockSessionService)
	m := NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{})
	handler := m.Authenticate(sessionEcho(t))

	sessionService.On("ParseToken", mock.Anything, "good-token").Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
	sessionService.On("ParseToken", mock.Anything, "").Return(nil, exceptions.ErrTokenMissing(nil))
	sessionService.On("ParseToken", mock.Anything, "stale-token").Return(nil, exceptions.ErrTokenInvalidOrExpired(nil))

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", rr.Header().Get("X-User"))
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Header().Get("X-User"))
	})
}

func TestAuthenticateOptional(t *testing.T) {
	sessionService := new(mocks.MockSessionService)
	m := NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{})
	handler := m.AuthenticateOptional(sessionEcho(t))

	sessionService.On("ParseToken", mock.Anything, "good-token").Return(&models.Session{UserID: "u1"}, nil)
	sessionService.On("ParseToken", mock.Anything, "stale-token").Return(nil, exceptions.ErrTokenInvalidOrExpired(nil))

	for name, tc := range map[string]struct {
		header string
		user   string
	}{
		"anonymous":     {header: "", user: ""},
		"signed in":     {header: "Bearer good-token", user: "u1"},
		"invalid token": {header: "Bearer stale-token", user: ""},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", nil)
			if tc.header != "" {
				req.Header.Set(constvars.HeaderAuthorization, tc.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.user, rr.Header().Get("X-User"))
		})
	}
	sessionService.AssertNumberOfCalls(t, "ParseToken", 2)
}

package middlewares

import (
	"halo-service/internal/app/config"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetRequestID(r.Context())
	}))

	t.Run("client supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "abc-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestClientIP(t *testing.T) {
	capture := func(m *Middlewares, req *http.Request) string {
		var seen string
		handler := m.ClientIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetClientIPFromContext(r.Context())
		}))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		return seen
	}

	t.Run("forwarded header from untrusted peer is ignored", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")

		assert.Equal(t, "192.0.2.1", capture(m, req))
	})

	t.Run("forwarded header from trusted proxy is honoured", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{App: config.App{TrustedProxies: "192.0.2.0/24"}})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")

		assert.Equal(t, "203.0.113.7", capture(m, req))
	})
}

func TestBodyLimit(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}})

	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	small := httptest.NewRecorder()
	handler.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, small.Code)

	large := httptest.NewRecorder()
	handler.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 2*1024*1024))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}

func TestErrorHandler(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientCannotProcessRequest)
}

package routers

import (
	"bytes"
	"context"
	"fmt"
	"halo-service/internal/app/config"
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"
	"halo-service/internal/app/mocks"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetSessionUser(ctx context.Context, session *models.Session) (*responses.SessionUser, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SessionUser), args.Error(1)
}

func newAuthTestRouter(authUsecase *MockAuthUsecase, sessionService *mocks.MockSessionService, internalConfig *config.InternalConfig) *chi.Mux {
	logger := zap.NewNop()
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachAuthRoutes(router, middlewareInstance, controllers.NewAuthController(logger, authUsecase))
	return router
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(body)
}

func TestAuthRouter_Register(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(authUsecase, new(mocks.MockSessionService), &config.InternalConfig{})

	t.Run("creates the user", func(t *testing.T) {
		authUsecase.On("RegisterUser", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "asha@example.com" && r.Name == "Asha Rao"
		})).Return(&responses.RegisterUser{UserID: "u1", Name: "Asha Rao", Email: "asha@example.com"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]interface{}{
			"name":     "  Asha Rao ",
			"age":      30,
			"email":    "Asha@Example.com",
			"password": "secret1",
		}))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
	})

	t.Run("rejects an underage user before the usecase", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]interface{}{
			"name":     "Kid",
			"age":      12,
			"email":    "kid@example.com",
			"password": "secret1",
		}))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		authUsecase.On("RegisterUser", mock.Anything, mock.Anything).Return(nil, exceptions.ErrEmailAlreadyExist(nil)).Once()

		req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]interface{}{
			"name":     "Asha Rao",
			"age":      30,
			"email":    "asha@example.com",
			"password": "secret1",
		}))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_Login(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(authUsecase, new(mocks.MockSessionService), &config.InternalConfig{})

	authUsecase.On("LoginUser", mock.Anything, mock.MatchedBy(func(r *requests.LoginUser) bool {
		return r.Password == "secret1"
	})).Return(&responses.LoginUser{UserID: "u1", Token: "jwt"}, nil)
	authUsecase.On("LoginUser", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidCredentials(nil))

	login := func(password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, map[string]string{
			"email":    "asha@example.com",
			"password": password,
		}))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, login("secret1").Code)
	assert.Equal(t, http.StatusUnauthorized, login("wrong-password").Code)
}

func TestAuthRouter_CredentialLimiter(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	internalConfig := &config.InternalConfig{App: config.App{AuthMaxRequestsPerMinute: 2, AuthBlockTimeInSeconds: 60}}
	router := newAuthTestRouter(authUsecase, new(mocks.MockSessionService), internalConfig)

	authUsecase.On("SendOTP", mock.Anything, mock.Anything).Return(nil)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/send-otp", jsonBody(t, map[string]string{"email": "asha@example.com"}))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	authUsecase.AssertNumberOfCalls(t, "SendOTP", 2)
}

func TestAuthRouter_CredentialLimiterIgnoresForwardedFor(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{App: config.App{AuthMaxRequestsPerMinute: 2, AuthBlockTimeInSeconds: 60}}
	middlewareInstance := middlewares.NewMiddlewares(logger, new(mocks.MockSessionService), internalConfig)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Use(middlewareInstance.ClientIP)
	attachAuthRoutes(router, middlewareInstance, controllers.NewAuthController(logger, authUsecase))

	authUsecase.On("VerifyOTP", mock.Anything, mock.Anything).Return(exceptions.ErrOTPInvalid(nil))

	admitted := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/verify-otp", jsonBody(t, map[string]string{"email": "asha@example.com", "otp": "123456"}))
		req.RemoteAddr = "203.0.113.9:4444"
		req.Header.Set(constvars.HeaderXForwardedFor, fmt.Sprintf("10.0.0.%d", i))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusTooManyRequests {
			admitted++
		}
	}

	assert.Equal(t, 2, admitted)
	authUsecase.AssertNumberOfCalls(t, "VerifyOTP", 2)
}

func TestAuthRouter_AuthenticatedRoutes(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	sessionService := new(mocks.MockSessionService)
	router := newAuthTestRouter(authUsecase, sessionService, &config.InternalConfig{})

	session := &models.Session{SessionID: "s1", UserID: "u1", Email: "asha@example.com", Name: "Asha Rao"}
	sessionService.On("ParseToken", mock.Anything, "good-token").Return(session, nil)
	sessionService.On("ParseToken", mock.Anything, "").Return(nil, exceptions.ErrTokenMissing(nil))

	authUsecase.On("LogoutUser", mock.Anything, session).Return(nil)
	authUsecase.On("GetSessionUser", mock.Anything, session).Return(&responses.SessionUser{UserID: "u1"}, nil)

	t.Run("logout without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "LogoutUser", mock.Anything, mock.Anything)
	})

	t.Run("logout with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("me", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"userId":"u1"`)
	})
}

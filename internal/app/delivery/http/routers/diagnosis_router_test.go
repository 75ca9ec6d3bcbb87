package routers

import (
	"bytes"
	"context"
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
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDiagnosisUsecase struct {
	mock.Mock
}

func (m *MockDiagnosisUsecase) GetDiagnosis(ctx context.Context, request *requests.Diagnosis) (*responses.Diagnosis, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Diagnosis), args.Error(1)
}

func (m *MockDiagnosisUsecase) TestAI(ctx context.Context) (*responses.AITest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AITest), args.Error(1)
}

func (m *MockDiagnosisUsecase) GetCommonSymptoms(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockDiagnosisUsecase) HasRemoteProvider() bool {
	args := m.Called()
	return args.Bool(0)
}

func newDiagnosisTestRouter(diagnosisUsecase *MockDiagnosisUsecase, sessionService *mocks.MockSessionService) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{Diagnosis: config.AppDiagnosis{TimeoutInSeconds: 5}}
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Use(middlewareInstance.ClientIP)
	attachDiagnosisRoutes(router, middlewareInstance, controllers.NewDiagnosisController(logger, diagnosisUsecase, internalConfig))
	return router
}

func TestDiagnosisRouter_GetDiagnosis(t *testing.T) {
	t.Run("anonymous caller is keyed by socket address not forwarded header", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))

		diagnosisUsecase.On("GetDiagnosis", mock.Anything, mock.MatchedBy(func(r *requests.Diagnosis) bool {
			return r.ClientKey == "ip:192.0.2.1" && r.Symptoms == "fever, headache"
		})).Return(&responses.Diagnosis{Response: "rest", Source: "local"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(`{"symptoms":"  fever, headache "}`))
		req.Header.Set(constvars.HeaderXForwardedFor, "203.0.113.9, 10.0.0.1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"source":"local"`)
		diagnosisUsecase.AssertExpectations(t)
	})

	t.Run("signed-in caller is keyed by user", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		sessionService := new(mocks.MockSessionService)
		router := newDiagnosisTestRouter(diagnosisUsecase, sessionService)

		sessionService.On("ParseToken", mock.Anything, "good-token").Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
		diagnosisUsecase.On("GetDiagnosis", mock.Anything, mock.MatchedBy(func(r *requests.Diagnosis) bool {
			return r.ClientKey == "user:u1"
		})).Return(&responses.Diagnosis{Response: "rest", Source: "gemini"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(`{"symptoms":"cough"}`))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		diagnosisUsecase.AssertExpectations(t)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))

		diagnosisUsecase.On("GetDiagnosis", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrDiagnosisQuotaExceeded(nil).WithRetryAfter(120)).Once()

		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(`{"symptoms":"cough"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "120", rr.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("malformed body", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))

		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(`not json`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		diagnosisUsecase.AssertNotCalled(t, "GetDiagnosis", mock.Anything, mock.Anything)
	})

	t.Run("oversized symptoms are rejected before the usecase", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))

		body := `{"symptoms":"` + strings.Repeat("a", 2001) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		diagnosisUsecase.AssertNotCalled(t, "GetDiagnosis", mock.Anything, mock.Anything)
	})

	t.Run("symptoms at the length limit pass", func(t *testing.T) {
		diagnosisUsecase := new(MockDiagnosisUsecase)
		router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))
		diagnosisUsecase.On("GetDiagnosis", mock.Anything, mock.Anything).
			Return(&responses.Diagnosis{Response: "rest", Source: "local"}, nil).Once()

		body := `{"symptoms":"` + strings.Repeat("a", 2000) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/get_diagnosis", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		diagnosisUsecase.AssertExpectations(t)
	})
}

func TestDiagnosisRouter_CommonSymptoms(t *testing.T) {
	diagnosisUsecase := new(MockDiagnosisUsecase)
	router := newDiagnosisTestRouter(diagnosisUsecase, new(mocks.MockSessionService))

	diagnosisUsecase.On("GetCommonSymptoms", mock.Anything).Return([]string{"Fever", "Cough"})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/symptoms/common", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Fever"`)
}

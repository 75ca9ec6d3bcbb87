package routers

import (
	"bytes"
	"halo-service/internal/app/config"
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"
	"halo-service/internal/app/mocks"
	"halo-service/internal/app/services/core/assessments"
	"halo-service/internal/app/services/core/doctors"
	"halo-service/internal/app/services/core/health"
	"halo-service/internal/app/services/core/medicines"
	"halo-service/internal/app/services/core/places"
	"halo-service/internal/app/services/core/system"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDegradedTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "1.0.0",
			EndpointPrefix:             "/api",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
		Diagnosis: config.AppDiagnosis{TimeoutInSeconds: 5},
	}

	sessionService := new(mocks.MockSessionService)
	sessionService.On("ParseToken", mock.Anything, "").Return(nil, exceptions.ErrTokenMissing(nil))

	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	systemUsecase := system.NewSystemUsecase(nil, false, false, internalConfig, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, &Controllers{
		Auth:       controllers.NewAuthController(logger, new(MockAuthUsecase)),
		Diagnosis:  controllers.NewDiagnosisController(logger, new(MockDiagnosisUsecase), internalConfig),
		Assessment: controllers.NewAssessmentController(logger, assessments.NewAssessmentUsecase(logger)),
		Health:     controllers.NewHealthController(logger, health.NewHealthUsecase(logger)),
		Doctor:     controllers.NewDoctorController(logger, doctors.NewDoctorUsecase(logger)),
		Medicine:   controllers.NewMedicineController(logger, medicines.NewMedicineUsecase(logger), internalConfig),
		Places:     controllers.NewPlacesController(logger, places.NewPlacesUsecase(nil, nil, logger)),
		System:     controllers.NewSystemController(logger, systemUsecase),
	})
	return router
}

func decodeEnvelope(t *testing.T, body io.Reader) responses.ResponseDTO {
	t.Helper()
	var envelope responses.ResponseDTO
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestSetupRoutes_DegradedMode(t *testing.T) {
	router := newDegradedTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedText   string
	}{
		{name: "root", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK, expectedText: "BMI Calculator"},
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedText: `"ai_engine":"not configured"`},
		{name: "doctor by id", method: http.MethodGet, path: "/api/doctors/2", expectedStatus: http.StatusOK, expectedText: `"id":2`},
		{name: "doctor bad id", method: http.MethodGet, path: "/api/doctors/abc", expectedStatus: http.StatusBadRequest},
		{name: "unknown doctor", method: http.MethodGet, path: "/api/doctors/99", expectedStatus: http.StatusNotFound},
		{name: "bmi", method: http.MethodPost, path: "/api/health/bmi", body: `{"height":"175","weight":"70 kg"}`, expectedStatus: http.StatusOK, expectedText: `"bmi":"22.9"`},
		{name: "eq questions", method: http.MethodGet, path: "/api/eq/questions", expectedStatus: http.StatusOK, expectedText: `"questions"`},
		{name: "eq questions advertise default scale", method: http.MethodGet, path: "/api/eq/questions", expectedStatus: http.StatusOK, expectedText: `"scoring":{"default":"percent"`},
		{name: "languages", method: http.MethodGet, path: "/api/languages", expectedStatus: http.StatusOK},
		{name: "maps config", method: http.MethodGet, path: "/api/maps/config", expectedStatus: http.StatusOK, expectedText: `"enabled":false`},
		{name: "geocode without maps", method: http.MethodGet, path: "/api/maps/geocode?query=pune", expectedStatus: http.StatusInternalServerError},
		{name: "geocode without query", method: http.MethodGet, path: "/api/maps/geocode", expectedStatus: http.StatusBadRequest},
		{name: "me requires auth", method: http.MethodGet, path: "/api/auth/me", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = bytes.NewBufferString(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			if tc.expectedText != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedText)
			}

			envelope := decodeEnvelope(t, rr.Body)
			assert.Equal(t, tc.expectedStatus < http.StatusBadRequest, envelope.Success)
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, allowedOrigins(""))
	assert.Equal(t, []string{"http://localhost:3000", "https://halo.example.com"}, allowedOrigins(" http://localhost:3000 ,https://halo.example.com,"))
}

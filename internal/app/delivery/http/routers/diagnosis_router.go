package routers

import (
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosisController *controllers.DiagnosisController) {
	router.With(middlewares.AuthenticateOptional).Post("/get_diagnosis", diagnosisController.GetDiagnosis)
	router.Post("/test-ai", diagnosisController.TestAI)
	router.Get("/symptoms/common", diagnosisController.GetCommonSymptoms)
}

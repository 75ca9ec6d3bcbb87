package routers

import (
	"halo-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, assessmentController *controllers.AssessmentController) {
	router.Get("/questions", assessmentController.GetEQQuestions)
	router.Post("/score", assessmentController.ScoreEQ)
}

func attachHealthRoutes(router chi.Router, healthController *controllers.HealthController) {
	router.Post("/bmi", healthController.CalculateBMI)
}

package routers

import (
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Use(middlewares.Authenticate)

	router.Get("/complete/{user_id}", profileController.GetCompleteProfile)
	router.Put("/personal/{user_id}", profileController.UpdatePersonalInfo)
	router.Put("/health/{user_id}", profileController.UpdateHealthProfile)
	router.Put("/settings/{user_id}", profileController.UpdateSettings)
	router.Post("/activity/{user_id}", profileController.AddActivity)
	router.Post("/medical-history/{user_id}", profileController.AddMedicalHistory)
	router.Get("/medical-history/{user_id}", profileController.GetMedicalHistory)
	router.Post("/upload-picture/{user_id}", profileController.UploadProfilePicture)
}

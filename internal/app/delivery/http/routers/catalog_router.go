package routers

import (
	"halo-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.ListDoctors)
	router.Get("/{doctor_id}", doctorController.GetDoctorByID)
}

func attachMedicineRoutes(router chi.Router, medicineController *controllers.MedicineController) {
	router.Post("/analyze", medicineController.AnalyzeImage)
}

func attachPlacesRoutes(router chi.Router, placesController *controllers.PlacesController) {
	router.Get("/geocode", placesController.Geocode)
	router.Get("/nearby", placesController.NearbyPlaces)
	router.Get("/config", placesController.GetMapsConfig)
}

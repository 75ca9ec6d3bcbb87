package routers

import (
	"halo-service/internal/app/config"
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Profile    *controllers.ProfileController
	Diagnosis  *controllers.DiagnosisController
	Assessment *controllers.AssessmentController
	Health     *controllers.HealthController
	Doctor     *controllers.DoctorController
	Medicine   *controllers.MedicineController
	Places     *controllers.PlacesController
	System     *controllers.SystemController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.ClientIP)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.BodyLimit)

	router.Get("/", controllers.System.GetAPIInfo)
	router.Get("/health", controllers.System.HealthCheck)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, controllers.Auth)
		})

		r.Route("/profile", func(r chi.Router) {
			attachProfileRoutes(r, middlewares, controllers.Profile)
		})

		attachDiagnosisRoutes(r, middlewares, controllers.Diagnosis)

		r.Route("/eq", func(r chi.Router) {
			attachAssessmentRoutes(r, controllers.Assessment)
		})

		r.Route("/health", func(r chi.Router) {
			attachHealthRoutes(r, controllers.Health)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, controllers.Doctor)
		})

		r.Route("/medicine", func(r chi.Router) {
			attachMedicineRoutes(r, controllers.Medicine)
		})

		r.Route("/maps", func(r chi.Router) {
			attachPlacesRoutes(r, controllers.Places)
		})

		r.Get("/languages", controllers.System.GetLanguages)
	})
}

func allowedOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

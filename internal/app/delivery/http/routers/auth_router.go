package routers

import (
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	credentialLimiter := newCredentialLimiter(middlewares)

	router.With(credentialLimiter.Limit).Post("/register", authController.Register)
	router.With(credentialLimiter.Limit).Post("/login", authController.Login)
	router.With(credentialLimiter.Limit).Post("/send-otp", authController.SendOTP)
	router.With(credentialLimiter.Limit).Post("/verify-otp", authController.VerifyOTP)
	router.With(credentialLimiter.Limit).Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}

func newCredentialLimiter(m *middlewares.Middlewares) *middlewares.RateLimiter {
	requests, blockSeconds := 10, 60
	if m.InternalConfig != nil {
		if m.InternalConfig.App.AuthMaxRequestsPerMinute > 0 {
			requests = m.InternalConfig.App.AuthMaxRequestsPerMinute
		}
		if m.InternalConfig.App.AuthBlockTimeInSeconds > 0 {
			blockSeconds = m.InternalConfig.App.AuthBlockTimeInSeconds
		}
	}
	return middlewares.NewRateLimiter(m.Log, requests, time.Minute, time.Duration(blockSeconds)*time.Second)
}

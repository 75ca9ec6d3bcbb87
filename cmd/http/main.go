package main

import (
	"context"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/delivery/http/controllers"
	"halo-service/internal/app/delivery/http/middlewares"
	"halo-service/internal/app/delivery/http/routers"
	"halo-service/internal/app/drivers/ai"
	"halo-service/internal/app/drivers/database"
	"halo-service/internal/app/drivers/geo"
	"halo-service/internal/app/drivers/logger"
	"halo-service/internal/app/drivers/messaging"
	storageDriver "halo-service/internal/app/drivers/storage"
	"halo-service/internal/app/services/core/assessments"
	"halo-service/internal/app/services/core/auth"
	"halo-service/internal/app/services/core/diagnosis"
	"halo-service/internal/app/services/core/doctors"
	"halo-service/internal/app/services/core/health"
	"halo-service/internal/app/services/core/medicines"
	"halo-service/internal/app/services/core/places"
	"halo-service/internal/app/services/core/profiles"
	"halo-service/internal/app/services/core/session"
	"halo-service/internal/app/services/core/system"
	"halo-service/internal/app/services/core/users"
	"halo-service/internal/app/services/shared/llm"
	"halo-service/internal/app/services/shared/locker"
	"halo-service/internal/app/services/shared/mailer"
	"halo-service/internal/app/services/shared/ratelimiter"
	"halo-service/internal/app/services/shared/redis"
	"halo-service/internal/app/services/shared/storage"
	"halo-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting halo-service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	sessionService := session.NewSessionService(redisRepository, cfg, log)

	// Mailer
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.RabbitMQ.MailerQueue)
	if err != nil {
		log.Fatal("Failed to initialize mailer service", zap.Error(err))
	}

	// Storage
	objectStorage := newObjectStorage(bootstrap.DriverConfig, cfg)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 5*time.Second)
	if err := userRepository.EnsureIndexes(indexCtx); err != nil {
		log.Warn("Failed to ensure user indexes, running in degraded mode", zap.Error(err))
	}
	cancelIndex()
	userProfileRepository := profiles.NewUserProfileMongoRepository(bootstrap.MongoDB)
	healthProfileRepository := profiles.NewHealthProfileMongoRepository(bootstrap.MongoDB)
	userSettingsRepository := profiles.NewUserSettingsMongoRepository(bootstrap.MongoDB)
	activityRepository := profiles.NewActivityMongoRepository(bootstrap.MongoDB)
	medicalHistoryRepository := profiles.NewMedicalHistoryMongoRepository(bootstrap.MongoDB)

	// Diagnosis providers share one outbound budget
	outboundLimiter := newPerMinuteLimiter(cfg.Diagnosis.OutboundRequestsPerMinute)
	geminiClient := ai.NewGeminiClient(context.Background(), cfg)
	providers := []contracts.DiagnosisProvider{
		llm.NewGeminiProvider(geminiClient, cfg.Gemini.Model, outboundLimiter, log),
		llm.NewCompletionProvider(
			cfg.Completion.BaseURL,
			cfg.Completion.APIKey,
			cfg.Completion.Model,
			time.Duration(cfg.Completion.HTTPTimeoutInSeconds)*time.Second,
			outboundLimiter,
			log,
		),
	}

	// Maps
	var mapsClient contracts.MapsClient
	if client := geo.NewGoogleMapsClient(cfg); client != nil {
		mapsClient = client
	}
	var mapsLimiter *rate.Limiter
	if cfg.Maps.RequestsPerSecond > 0 {
		mapsLimiter = rate.NewLimiter(rate.Limit(cfg.Maps.RequestsPerSecond), 1)
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		userProfileRepository,
		redisRepository,
		sessionService,
		lockerService,
		mailerService,
		cfg,
		log,
	)
	profileUsecase := profiles.NewProfileUsecase(
		userProfileRepository,
		healthProfileRepository,
		userSettingsRepository,
		activityRepository,
		medicalHistoryRepository,
		objectStorage,
		log,
	)
	diagnosisUsecase := diagnosis.NewDiagnosisUsecase(
		providers,
		diagnosis.NewLocalGenerator(),
		redisRepository,
		resourceLimiter,
		cfg,
		log,
	)
	systemUsecase := system.NewSystemUsecase(
		[]contracts.HealthChecker{
			system.NewMongoChecker(bootstrap.MongoDB),
			system.NewRedisChecker(bootstrap.Redis),
			system.NewQueueChecker(mailerService),
		},
		diagnosisUsecase.HasRemoteProvider(),
		objectStorage != nil,
		cfg,
		log,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionService, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:       controllers.NewAuthController(log, authUsecase),
		Profile:    controllers.NewProfileController(log, profileUsecase, cfg),
		Diagnosis:  controllers.NewDiagnosisController(log, diagnosisUsecase, cfg),
		Assessment: controllers.NewAssessmentController(log, assessments.NewAssessmentUsecase(log)),
		Health:     controllers.NewHealthController(log, health.NewHealthUsecase(log)),
		Doctor:     controllers.NewDoctorController(log, doctors.NewDoctorUsecase(log)),
		Medicine:   controllers.NewMedicineController(log, medicines.NewMedicineUsecase(log), cfg),
		Places:     controllers.NewPlacesController(log, places.NewPlacesUsecase(mapsClient, mapsLimiter, log)),
		System:     controllers.NewSystemController(log, systemUsecase),
	})
}

func newObjectStorage(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) contracts.Storage {
	switch internalConfig.Storage.Driver {
	case constvars.StorageDriverS3:
		client := storageDriver.NewS3(context.Background(), driverConfig)
		return storage.NewS3Storage(client, driverConfig.S3.BucketName, driverConfig.S3.Region, driverConfig.S3.Endpoint)
	case constvars.StorageDriverMinio:
		client := storageDriver.NewMinio(driverConfig)
		return storage.NewMinioStorage(client, driverConfig.Minio.BucketName, driverConfig.Minio.PublicURL)
	default:
		return nil
	}
}

func newPerMinuteLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

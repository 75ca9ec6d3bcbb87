package system

import (
	"context"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var apiFeatures = []string{
	"Secure Authentication",
	"Health Profile Management",
	"AI-Powered Diagnosis",
	"Emotional Intelligence Assessment",
	"BMI Calculator",
	"Doctor Directory",
	"Nearby Medical Places",
	"Email Notifications",
}

type systemUsecase struct {
	Checkers          []contracts.HealthChecker
	AIConfigured      bool
	StorageConfigured bool
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewSystemUsecase(
	checkers []contracts.HealthChecker,
	aiConfigured bool,
	storageConfigured bool,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SystemUsecase {
	return &systemUsecase{
		Checkers:          checkers,
		AIConfigured:      aiConfigured,
		StorageConfigured: storageConfigured,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

// GetServiceHealth pings every backing service concurrently. A failed ping
// degrades the overall status but never fails the health check itself.
func (uc *systemUsecase) GetServiceHealth(ctx context.Context) *responses.ServiceHealth {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var mu sync.Mutex
	services := make(map[string]string, len(uc.Checkers)+2)
	healthy := true

	var g errgroup.Group
	for _, checker := range uc.Checkers {
		checker := checker
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, constvars.HealthCheckTimeout)
			defer cancel()

			status := constvars.ComponentStatusUp
			if err := checker.Check(checkCtx); err != nil {
				status = constvars.ComponentStatusDown
				uc.Log.Warn("systemUsecase.GetServiceHealth component unreachable",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSourceKey, checker.Name()),
					zap.Error(err),
				)
			}

			mu.Lock()
			services[checker.Name()] = status
			if status != constvars.ComponentStatusUp {
				healthy = false
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	services[ServiceAIEngine] = componentState(uc.AIConfigured)
	services[ServiceStorage] = componentState(uc.StorageConfigured)

	status := constvars.HealthStatusHealthy
	if !healthy {
		status = constvars.HealthStatusDegraded
	}

	uc.Log.Info("systemUsecase.GetServiceHealth succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHealthStatusKey, status),
	)
	return &responses.ServiceHealth{
		Status:    status,
		Service:   constvars.ServiceName,
		Version:   uc.version(),
		Timestamp: uc.now().UTC(),
		Services:  services,
	}
}

func (uc *systemUsecase) GetAPIInfo(ctx context.Context) *responses.APIInfo {
	docs := "Documentation available in development mode"
	if uc.InternalConfig != nil && uc.InternalConfig.App.Env == "development" {
		docs = uc.InternalConfig.App.EndpointPrefix
	}
	return &responses.APIInfo{
		Message:  constvars.WelcomeMessage,
		Tagline:  constvars.ServiceTagline,
		Version:  uc.version(),
		Status:   constvars.HealthStatusHealthy,
		Features: append([]string(nil), apiFeatures...),
		Docs:     docs,
		Support:  constvars.ServiceSupportMail,
	}
}

func (uc *systemUsecase) GetLanguages(ctx context.Context) []constvars.Language {
	return append([]constvars.Language(nil), constvars.SupportedLanguages...)
}

func (uc *systemUsecase) version() string {
	if uc.InternalConfig == nil || uc.InternalConfig.App.Version == "" {
		return constvars.ServiceVersion
	}
	return uc.InternalConfig.App.Version
}

func componentState(configured bool) string {
	if configured {
		return constvars.ComponentStatusActive
	}
	return constvars.ComponentStatusOff
}

package contracts

import (
	"context"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/responses"
)

// HealthChecker reports whether one backing service answers.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

type SystemUsecase interface {
	GetServiceHealth(ctx context.Context) *responses.ServiceHealth
	GetAPIInfo(ctx context.Context) *responses.APIInfo
	GetLanguages(ctx context.Context) []constvars.Language
}

package system

import (
	"context"
	"errors"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/mocks"
	"halo-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func checker(name string, err error) *mocks.MockHealthChecker {
	m := new(mocks.MockHealthChecker)
	m.On("Name").Return(name)
	m.On("Check", mock.Anything).Return(err)
	return m
}

func TestSystemUsecase_GetServiceHealth(t *testing.T) {
	cfg := &config.InternalConfig{App: config.App{Version: "2.1.0"}}

	t.Run("healthy when every component answers", func(t *testing.T) {
		uc := NewSystemUsecase([]contracts.HealthChecker{
			checker(ServiceDatabase, nil),
			checker(ServiceCache, nil),
			checker(ServiceQueue, nil),
		}, true, true, cfg, zap.NewNop())

		health := uc.GetServiceHealth(context.Background())
		assert.Equal(t, constvars.HealthStatusHealthy, health.Status)
		assert.Equal(t, "2.1.0", health.Version)
		assert.Equal(t, constvars.ServiceName, health.Service)
		assert.Equal(t, constvars.ComponentStatusUp, health.Services[ServiceDatabase])
		assert.Equal(t, constvars.ComponentStatusActive, health.Services[ServiceAIEngine])
		assert.Equal(t, constvars.ComponentStatusActive, health.Services[ServiceStorage])
	})

	t.Run("degraded when a component is down", func(t *testing.T) {
		uc := NewSystemUsecase([]contracts.HealthChecker{
			checker(ServiceDatabase, errors.New("server selection timeout")),
			checker(ServiceCache, nil),
		}, false, true, cfg, zap.NewNop())

		health := uc.GetServiceHealth(context.Background())
		assert.Equal(t, constvars.HealthStatusDegraded, health.Status)
		assert.Equal(t, constvars.ComponentStatusDown, health.Services[ServiceDatabase])
		assert.Equal(t, constvars.ComponentStatusUp, health.Services[ServiceCache])
		assert.Equal(t, constvars.ComponentStatusOff, health.Services[ServiceAIEngine])
	})

	t.Run("each check gets a deadline", func(t *testing.T) {
		slow := new(mocks.MockHealthChecker)
		slow.On("Name").Return(ServiceQueue)
		slow.On("Check", mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= constvars.HealthCheckTimeout
		})).Return(nil)

		uc := NewSystemUsecase([]contracts.HealthChecker{slow}, true, true, cfg, zap.NewNop())
		health := uc.GetServiceHealth(context.Background())
		assert.Equal(t, constvars.HealthStatusHealthy, health.Status)
		slow.AssertExpectations(t)
	})

	t.Run("nil drivers report disconnected", func(t *testing.T) {
		uc := NewSystemUsecase([]contracts.HealthChecker{
			NewMongoChecker(nil),
			NewRedisChecker(nil),
			NewQueueChecker(nil),
		}, true, false, nil, zap.NewNop())

		health := uc.GetServiceHealth(context.Background())
		assert.Equal(t, constvars.HealthStatusDegraded, health.Status)
		assert.Equal(t, constvars.ServiceVersion, health.Version)
		for _, name := range []string{ServiceDatabase, ServiceCache, ServiceQueue} {
			assert.Equal(t, constvars.ComponentStatusDown, health.Services[name])
		}
	})
}

func TestSystemUsecase_GetAPIInfoAndLanguages(t *testing.T) {
	uc := NewSystemUsecase(nil, true, true, &config.InternalConfig{}, zap.NewNop())

	info := uc.GetAPIInfo(context.Background())
	assert.Equal(t, constvars.WelcomeMessage, info.Message)
	assert.Equal(t, constvars.ServiceSupportMail, info.Support)
	assert.NotEmpty(t, info.Features)

	languages := uc.GetLanguages(context.Background())
	assert.Len(t, languages, 4)
	assert.Equal(t, "or", languages[3].Code)
}

package session

import (
	"context"
	"halo-service/internal/app/config"
	"halo-service/internal/app/mocks"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
}

func TestSessionService_CreateAndParse(t *testing.T) {
	redisRepo := new(mocks.MockRedisRepository)
	svc := NewSessionService(redisRepo, testConfig(), zap.NewNop())

	var stored *models.Session
	redisRepo.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("session:")
	}), mock.Anything, time.Hour).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(*models.Session)
		}).
		Return(nil).Once()

	user := &models.User{ID: "user-1", Name: "Asha", Email: "asha@example.com"}
	session, token, err := svc.Create(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", session.UserID)
	assert.NotEmpty(t, token)

	payload, err := json.Marshal(stored)
	require.NoError(t, err)
	redisRepo.On("Get", mock.Anything, "session:"+session.SessionID).Return(string(payload), nil).Once()

	parsed, err := svc.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, parsed.SessionID)
	assert.Equal(t, "asha@example.com", parsed.Email)
	redisRepo.AssertExpectations(t)
}

func TestSessionService_ParseToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		svc := NewSessionService(new(mocks.MockRedisRepository), testConfig(), zap.NewNop())
		_, err := svc.ParseToken(context.Background(), "")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		svc := NewSessionService(new(mocks.MockRedisRepository), testConfig(), zap.NewNop())
		token, err := utils.GenerateSessionJWT("sess-1", "other-secret", 1)
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), token)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("session no longer stored", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		svc := NewSessionService(redisRepo, testConfig(), zap.NewNop())
		token, err := utils.GenerateSessionJWT("sess-2", "test-secret", 1)
		require.NoError(t, err)
		redisRepo.On("Get", mock.Anything, "session:sess-2").Return("", nil).Once()

		_, err = svc.ParseToken(context.Background(), token)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})
}

package ratelimiter

import (
	"context"
	"errors"
	"halo-service/internal/app/mocks"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyResourceLimiter(t *testing.T) {
	now := time.Unix(1_700_000_010, 0).UTC()
	windowID := now.Unix() / 60
	expectedKey := "DIAGNOSIS-QUOTA:user-1:" + formatInt(windowID)

	t.Run("within quota", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, expectedKey, 61*time.Second).Return(2, nil)
		limiter := NewResourceLimiter(redisRepo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:      " USER-1 ",
			LimiterGroupName:  "diagnosis-quota",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		})

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		redisRepo.AssertExpectations(t)
	})

	t.Run("over quota returns retry after until next window", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, expectedKey, 61*time.Second).Return(3, nil)
		limiter := NewResourceLimiter(redisRepo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:      "user-1",
			LimiterGroupName:  "diagnosis-quota",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		})

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		nextWindow := (windowID + 1) * 60
		assert.Equal(t, int(nextWindow-now.Unix())+1, out.RetryAfterSecs)
	})

	t.Run("zero quota disables limiter", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		limiter := NewResourceLimiter(redisRepo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:     "user-1",
			LimiterGroupName: "diagnosis-quota",
		})

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		redisRepo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("redis down"))
		limiter := NewResourceLimiter(redisRepo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:     "user-1",
			LimiterGroupName: "diagnosis-quota",
			MaxQuota:         1,
			NowUTC:           now,
		})

		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

package profiles

import (
	"context"
	"halo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// PartProvider loads one part of the complete profile. Load reports false
// when the provider has nothing for the user.
type PartProvider[T any] interface {
	Source() string
	Load(ctx context.Context, userID string) (T, bool, error)
}

type providerFunc[T any] struct {
	source string
	load   func(ctx context.Context, userID string) (T, bool, error)
}

func (p providerFunc[T]) Source() string {
	return p.source
}

func (p providerFunc[T]) Load(ctx context.Context, userID string) (T, bool, error) {
	return p.load(ctx, userID)
}

// PartChain tries each provider in order and returns the first hit.
// Provider errors are logged and skipped.
type PartChain[T any] struct {
	Part      string
	Providers []PartProvider[T]
	Log       *zap.Logger
}

func (c PartChain[T]) Resolve(ctx context.Context, userID string) (T, string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var zero T
	for _, provider := range c.Providers {
		value, found, err := provider.Load(ctx, userID)
		if err != nil {
			c.Log.Warn("PartChain.Resolve provider failed, trying next",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProfilePartKey, c.Part),
				zap.String(constvars.LoggingSourceKey, provider.Source()),
				zap.Error(err),
			)
			continue
		}
		if found {
			return value, provider.Source()
		}
	}
	return zero, constvars.ResponseUnknown
}

package system

import (
	"context"
	"errors"
	"halo-service/internal/app/contracts"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ServiceDatabase = "database"
	ServiceCache    = "cache"
	ServiceQueue    = "queue"
	ServiceAIEngine = "ai_engine"
	ServiceStorage  = "storage"
)

var errNotConnected = errors.New("not connected")

type checkerFunc struct {
	name  string
	check func(ctx context.Context) error
}

func (c checkerFunc) Name() string                    { return c.name }
func (c checkerFunc) Check(ctx context.Context) error { return c.check(ctx) }

func NewMongoChecker(db *mongo.Database) contracts.HealthChecker {
	return checkerFunc{name: ServiceDatabase, check: func(ctx context.Context) error {
		if db == nil {
			return errNotConnected
		}
		return db.Client().Ping(ctx, readpref.Primary())
	}}
}

func NewRedisChecker(client *redis.Client) contracts.HealthChecker {
	return checkerFunc{name: ServiceCache, check: func(ctx context.Context) error {
		if client == nil {
			return errNotConnected
		}
		return client.Ping(ctx).Err()
	}}
}

// NewQueueChecker reports the mailer's broker channel.
func NewQueueChecker(mailer contracts.MailerService) contracts.HealthChecker {
	return checkerFunc{name: ServiceQueue, check: func(ctx context.Context) error {
		if mailer == nil {
			return errNotConnected
		}
		return mailer.Ping()
	}}
}

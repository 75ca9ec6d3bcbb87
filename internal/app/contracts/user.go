package contracts

import (
	"context"
	"halo-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	EnsureIndexes(ctx context.Context) error
}

package contracts

import (
	"context"
	"halo-service/internal/app/models"
)

type SessionService interface {
	Create(ctx context.Context, user *models.User) (session *models.Session, token string, err error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	// ParseToken resolves a bearer token into its live session.
	ParseToken(ctx context.Context, token string) (*models.Session, error)
}

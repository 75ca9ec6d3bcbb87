package contracts

import (
	"context"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, session *models.Session) error
	SendOTP(ctx context.Context, request *requests.SendOTP) error
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	GetSessionUser(ctx context.Context, session *models.Session) (*responses.SessionUser, error)
}

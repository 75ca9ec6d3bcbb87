package contracts

import (
	"context"
	"halo-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	Ping() error
}

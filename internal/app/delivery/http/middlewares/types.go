package middlewares

import (
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/utils"
	"net"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	TrustedProxies []*net.IPNet
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	var trustedProxies []*net.IPNet
	if internalConfig != nil {
		trustedProxies = utils.ParseTrustedProxies(internalConfig.App.TrustedProxies)
	}
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		TrustedProxies: trustedProxies,
	}
}

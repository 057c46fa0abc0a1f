package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"resume/internal/repositories"
	"resume/internal/services"
	"resume/pkg/config"
	"resume/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAccountService)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
}

func provideAccountService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokens, log)
}

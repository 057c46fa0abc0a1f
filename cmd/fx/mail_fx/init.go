package mail_fx

import (
	"go.uber.org/fx"

	"resume/internal/services"
	"resume/pkg/config"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) (services.IMailService, error) {
	return services.NewSMTPMailService(cfg.SMTP, cfg.BaseURL)
}

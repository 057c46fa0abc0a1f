package moderation_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"resume/internal/services"
	"resume/pkg/config"
)

var Module = fx.Provide(provideModerationService)

func provideModerationService(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (services.ModerationService, error) {
	moderator, err := services.NewModerationService(context.Background(), cfg.Moderation)
	if err != nil {
		return nil, err
	}
	log.Info("feedback moderation", zap.String("provider", cfg.Moderation.Provider))

	if closer, ok := moderator.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closer.Close()
			},
		})
	}
	return moderator, nil
}

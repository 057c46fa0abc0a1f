package feedback_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resume/internal/infra"
	"resume/internal/registry"
	"resume/internal/repositories"
	"resume/internal/services"
	"resume/pkg/config"
	"resume/pkg/metrics"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideNotifier, provideFeedbackService,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

// provideNotifier enables the mail channel when operators are configured and
// the Kafka channel when brokers are.
func provideNotifier(lc fx.Lifecycle, cfg *config.Config, mail services.IMailService, m *metrics.Metrics, log *zap.Logger) services.FeedbackNotifier {
	var channels []services.NotificationChannel
	if len(cfg.SMTP.Operators()) > 0 {
		channels = append(channels, services.NewMailChannel(mail))
	} else {
		log.Warn("ADMIN_EMAILS is empty, feedback mail notices are disabled")
	}

	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		producer := infra.NewProducer(brokers, cfg.Kafka.FeedbackTopic)
		channels = append(channels, services.NewEventChannel(producer))
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return producer.Close()
			},
		})
		log.Info("feedback events enabled", zap.Strings("brokers", brokers), zap.String("topic", cfg.Kafka.FeedbackTopic))
	}

	return services.NewFeedbackNotifier(log, m, channels...)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	reg *registry.Registry,
	notifier services.FeedbackNotifier,
	moderator services.ModerationService,
	m *metrics.Metrics,
	log *zap.Logger,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, reg, notifier, moderator, m, log)
}

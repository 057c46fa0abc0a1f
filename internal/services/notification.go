package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"resume/pkg/metrics"
)

// FeedbackNotice is what operators learn about a newly created feedback.
type FeedbackNotice struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Author     string    `json:"author"`
	Target     string    `json:"target"`
	EntityType string    `json:"entity_type"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	Status     string    `json:"status"`
	Content    string    `json:"content"`
}

// NotificationChannel delivers a notice over one transport.
type NotificationChannel interface {
	Name() string
	Deliver(ctx context.Context, notice FeedbackNotice) error
}

// FeedbackNotifier is the post-create hook. Notify has no error result:
// delivery is best effort and a failing channel never affects the caller.
type FeedbackNotifier interface {
	Notify(ctx context.Context, notice FeedbackNotice)
}

type multiNotifier struct {
	channels []NotificationChannel
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewFeedbackNotifier(log *zap.Logger, m *metrics.Metrics, channels ...NotificationChannel) FeedbackNotifier {
	return &multiNotifier{channels: channels, log: log, metrics: m}
}

func (n *multiNotifier) Notify(ctx context.Context, notice FeedbackNotice) {
	for _, ch := range n.channels {
		if err := n.deliver(ctx, ch, notice); err != nil {
			n.log.Warn("feedback notification failed",
				zap.String("channel", ch.Name()),
				zap.Uint("feedback_id", notice.ID),
				zap.Error(err))
			n.metrics.IncNotificationFailed(ch.Name())
		}
	}
}

func (n *multiNotifier) deliver(ctx context.Context, ch NotificationChannel, notice FeedbackNotice) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panicked: %v", r)
		}
	}()
	return ch.Deliver(ctx, notice)
}

type mailChannel struct {
	mail IMailService
}

func NewMailChannel(mail IMailService) NotificationChannel {
	return &mailChannel{mail: mail}
}

func (c *mailChannel) Name() string { return "mail" }

func (c *mailChannel) Deliver(_ context.Context, notice FeedbackNotice) error {
	return c.mail.SendFeedbackNotice(notice)
}

// EventPublisher is satisfied by infra.Producer.
type EventPublisher interface {
	Send(ctx context.Context, key string, message interface{}) error
}

const FeedbackCreatedEvent = "feedback.created"

type FeedbackEvent struct {
	Event    string         `json:"event"`
	Feedback FeedbackNotice `json:"feedback"`
}

type eventChannel struct {
	publisher EventPublisher
	timeout   time.Duration
}

func NewEventChannel(publisher EventPublisher) NotificationChannel {
	return &eventChannel{publisher: publisher, timeout: 5 * time.Second}
}

func (c *eventChannel) Name() string { return "kafka" }

func (c *eventChannel) Deliver(ctx context.Context, notice FeedbackNotice) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()
	return c.publisher.Send(ctx, fmt.Sprintf("%d", notice.ID), FeedbackEvent{
		Event:    FeedbackCreatedEvent,
		Feedback: notice,
	})
}

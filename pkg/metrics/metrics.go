package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the site.
type Metrics struct {
	FeedbackCreated       *prometheus.CounterVec
	NotificationsFailed   *prometheus.CounterVec
	FeedbackStatusChanged *prometheus.CounterVec
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FeedbackCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_feedback_created_total",
			Help: "Feedback records created, by target entity type and initial status",
		}, []string{"entity_type", "status"}),
		NotificationsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_feedback_notifications_failed_total",
			Help: "Operator notifications that could not be delivered, by channel",
		}, []string{"channel"}),
		FeedbackStatusChanged: f.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_feedback_status_changed_total",
			Help: "Moderation status transitions, by new status",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncFeedbackCreated(entityType, status string) {
	if m == nil {
		return
	}
	m.FeedbackCreated.WithLabelValues(entityType, status).Inc()
}

func (m *Metrics) IncNotificationFailed(channel string) {
	if m == nil {
		return
	}
	m.NotificationsFailed.WithLabelValues(channel).Inc()
}

func (m *Metrics) IncStatusChanged(status string) {
	if m == nil {
		return
	}
	m.FeedbackStatusChanged.WithLabelValues(status).Inc()
}

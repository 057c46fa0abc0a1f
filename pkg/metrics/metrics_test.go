package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncFeedbackCreated("skill", "published")
	m.IncFeedbackCreated("skill", "published")
	m.IncNotificationFailed("mail")
	m.IncStatusChanged("hidden")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FeedbackCreated.WithLabelValues("skill", "published")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsFailed.WithLabelValues("mail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedbackStatusChanged.WithLabelValues("hidden")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncFeedbackCreated("skill", "published")
		m.IncNotificationFailed("mail")
		m.IncStatusChanged("hidden")
	})
}

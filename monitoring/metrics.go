package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sagaOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_operations_total",
			Help: "Saga executions by outcome",
		},
		[]string{"saga", "outcome"},
	)

	notificationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Notification emails by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

func RecordSaga(saga, outcome string) {
	sagaOperations.WithLabelValues(saga, outcome).Inc()
}

func RecordEmail(kind, outcome string) {
	notificationEmails.WithLabelValues(kind, outcome).Inc()
}

package notify

import "github.com/prometheus/client_golang/prometheus"

var (
	// emailsSent counts emails delivered, by kind (customer_receipt,
	// shop_notification, backlog).
	emailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total emails delivered successfully.",
		},
		[]string{"kind"},
	)

	// emailFailures counts email jobs that exhausted their immediate retries.
	emailFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "email_failures_total",
			Help: "Email jobs that exhausted immediate retries.",
		},
	)

	// backlogDepth gauges the current size of the durable email backlog.
	backlogDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_backlog_depth",
			Help: "Entries currently waiting in the email backlog.",
		},
	)

	// webhookDeliveries counts webhook attempts by outcome (ok, failed).
	webhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Webhook delivery attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(emailsSent, emailFailures, backlogDepth, webhookDeliveries)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diamondstore_orders_created_total",
		Help: "Total number of orders added to the store.",
	})

	CheckoutRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondstore_checkout_rejected_total",
		Help: "Total number of checkout submissions refused, by reason.",
	},
		[]string{"reason"},
	)

	StoreMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondstore_store_mutations_total",
		Help: "Total number of store mutations, by operation.",
	},
		[]string{"operation"},
	)

	PersistErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diamondstore_persist_errors_total",
		Help: "Total number of snapshot writes that failed.",
	})

	ActivityLogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "diamondstore_activity_log_entries",
		Help: "Current number of entries in the activity log.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondstore_http_requests_total",
		Help: "Total number of HTTP requests, by route and status code.",
	},
		[]string{"route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "diamondstore_http_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"route"},
	)

	EventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diamondstore_events_published_total",
		Help: "Total number of activity events published.",
	})

	EventsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diamondstore_events_failed_total",
		Help: "Total number of activity events that could not be published.",
	})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondstore_notifications_total",
		Help: "Total number of admin notifications, by channel and result.",
	},
		[]string{"channel", "result"},
	)
)

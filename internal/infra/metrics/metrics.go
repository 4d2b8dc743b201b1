package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	resellerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_requests_total",
			Help: "Reseller API calls by action and outcome (ok/network/malformed/api_error).",
		},
		[]string{"action", "outcome"},
	)

	resellerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reseller_request_duration_seconds",
			Help:    "Reseller API call latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"action"},
	)

	telegramUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_total",
			Help: "Incoming Telegram updates by kind (command/message/callback).",
		},
		[]string{"kind"},
	)

	handlerPanics = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "telegram_handler_panics_total",
			Help: "Panics recovered while handling updates.",
		},
	)

	ordersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Order placement attempts by result (created/failed).",
		},
		[]string{"result"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "conversation_sessions_active",
			Help: "Chats with an in-progress conversation.",
		},
	)

	resellerUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reseller_up",
			Help: "1 if the last reseller health check succeeded.",
		},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			resellerRequests, resellerLatency,
			telegramUpdates, handlerPanics,
			ordersPlaced, activeSessions, resellerUp,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func ObserveResellerCall(action, outcome string, took time.Duration) {
	resellerRequests.WithLabelValues(norm(action), norm(outcome)).Inc()
	resellerLatency.WithLabelValues(norm(action)).Observe(took.Seconds())
}

func IncUpdate(kind string) {
	telegramUpdates.WithLabelValues(norm(kind)).Inc()
}

func IncPanic() {
	handlerPanics.Inc()
}

func IncOrder(result string) {
	ordersPlaced.WithLabelValues(norm(result)).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

func SetResellerUp(up bool) {
	if up {
		resellerUp.Set(1)
		return
	}
	resellerUp.Set(0)
}

// File: internal/infra/metrics/metrics.go
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Authentication attempts per intent and outcome.",
		},
		[]string{"intent", "outcome"},
	)

	chatTurns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "User chat turns per derived conversation context.",
		},
		[]string{"context"},
	)

	chipSelections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chip_selections_total",
			Help: "Quick-action chip selections per action id.",
		},
		[]string{"action"},
	)

	purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_total",
			Help: "Purchase submissions per outcome.",
		},
		[]string{"outcome"},
	)

	backendLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_call_latency_ms",
			Help:    "Backend call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"op", "success"},
	)

	priceCacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gold_price_cache_requests_total",
			Help: "Gold price lookups per cache result (hit/miss).",
		},
		[]string{"result"},
	)
)

func init() {
	register(authAttempts, chatTurns, chipSelections, purchases, backendLatencyMs, priceCacheRequests)
}

func IncAuthAttempt(intent, outcome string) {
	authAttempts.WithLabelValues(intent, outcome).Inc()
}

func IncChatTurn(context string) {
	chatTurns.WithLabelValues(context).Inc()
}

func IncChipSelection(action string) {
	chipSelections.WithLabelValues(action).Inc()
}

func IncPurchase(outcome string) {
	purchases.WithLabelValues(outcome).Inc()
}

func ObserveBackendCall(op string, success bool, ms float64) {
	backendLatencyMs.WithLabelValues(op, strconv.FormatBool(success)).Observe(ms)
}

func IncPriceCacheRequest(result string) {
	priceCacheRequests.WithLabelValues(result).Inc()
}

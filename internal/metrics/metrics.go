// Package metrics provides Prometheus instrumentation for the chat and
// matching core: connection gauges, message/broadcast counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ConnectionsActive tracks the current number of open chat connections.
	ConnectionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pairgogo_connections_active",
		Help: "Current number of open chat WebSocket connections",
	})

	// MessagesTotal counts persisted chat messages.
	MessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairgogo_messages_total",
		Help: "Total number of chat messages persisted",
	})

	// BroadcastsTotal counts per-connection delivery attempts, labeled by
	// outcome: "delivered" or "dropped".
	BroadcastsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pairgogo_broadcasts_total",
		Help: "Total number of per-connection broadcast deliveries",
	}, []string{"outcome"})

	// MatchesCreatedTotal counts newly materialized matches.
	MatchesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairgogo_matches_created_total",
		Help: "Total number of matches created",
	})
)

func init() {
	prometheus.MustRegister(
		ConnectionsActive,
		MessagesTotal,
		BroadcastsTotal,
		MatchesCreatedTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

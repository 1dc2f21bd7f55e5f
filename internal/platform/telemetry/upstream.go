package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeTransport   = "transport_error"
	OutcomeBadStatus   = "bad_status"
	OutcomeBadPayload  = "bad_payload"
	OutcomeInvalidArgs = "invalid_arguments"
)

var (
	// UpstreamCalls counts gateway operations by upstream service and outcome.
	// Exposed on /-/metrics.
	UpstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "homepage",
		Name:      "upstream_calls_total",
		Help:      "Gateway operations by upstream service and outcome.",
	}, []string{"service", "operation", "outcome"})

	// PlaylistDegraded counts playlist requests that were answered with an
	// empty playlist.
	PlaylistDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "homepage",
		Name:      "playlist_degraded_total",
		Help:      "Playlist requests answered with an empty playlist, by reason.",
	}, []string{"reason"})
)

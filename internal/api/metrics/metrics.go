// Package metrics defines all custom Prometheus metrics for the dashboard
// client core. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// RequestsTotal counts outgoing API requests.
// Labels:
//   - method: HTTP method
//   - path: request path relative to the API base (e.g. "/orders")
//   - status: numeric HTTP status, or "transport_error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of API requests issued by the client gateway.",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration measures wall time of an API call, transport through body read.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of API requests issued by the client gateway.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// AuthFailuresTotal counts responses the auth-failure interceptor acted on.
// Label:
//   - reason: "unauthorized" (HTTP 401) or "token_pattern" (message matched
//     an invalid/expired-credential pattern on another status)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_auth_failures_total",
		Help:      "Total number of intercepted authentication failures.",
	},
	[]string{"reason"},
)

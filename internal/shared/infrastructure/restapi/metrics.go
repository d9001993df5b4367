package restapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Requests sent to the REST backend by outcome.",
	}, []string{"method", "status"})

	backendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of REST backend requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

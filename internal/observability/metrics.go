package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "daylog",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of handled HTTP requests by route pattern.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

func init() {
	prometheus.MustRegister(httpRequestDuration)
}

// ObserveRequest records one handled request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestDuration.
		WithLabelValues(method, route, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
}

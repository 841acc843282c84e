package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "khqr",
		Subsystem: "gateway",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"source", "code"},
)

func observeRequest(source string, code int, elapsed time.Duration) {
	histogramRequestTime.
		WithLabelValues(source, strconv.Itoa(code)).
		Observe(elapsed.Seconds())
}

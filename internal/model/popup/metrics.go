package popup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	popupsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khqr",
			Subsystem: "popup",
			Name:      "opened_total",
		},
		[]string{"currency"},
	)
	popupsDismissed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "khqr",
			Subsystem: "popup",
			Name:      "dismissed_total",
		},
	)
	timerResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "khqr",
			Subsystem: "popup",
			Name:      "timer_resets_total",
		},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coilcalc"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)

// Calculator metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of calculations by tool and outcome",
		},
		[]string{"tool", "status"},
	)

	SafetyLevelsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "safety_levels_total",
			Help:      "Battery safety ratings handed out",
		},
		[]string{"level"},
	)

	ImportedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imported_rows_total",
			Help:      "Spreadsheet rows seen by the importer",
		},
		[]string{"status"},
	)
)

// ObserveCalculation counts one calculation for tool.
func ObserveCalculation(tool string, err error) {
	status := "ok"
	if err != nil {
		status = "invalid"
	}
	CalculationsTotal.WithLabelValues(tool, status).Inc()
}

func ObserveSafetyLevel(level string) {
	SafetyLevelsTotal.WithLabelValues(level).Inc()
}

package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solcver",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "solcver",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	inferences = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solcver",
			Name:      "inference_total",
			Help:      "Compiler version inferences by metadata era.",
		},
		[]string{"era"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solcver",
			Subsystem: "metadata",
			Name:      "decode_failures_total",
			Help:      "Metadata trailer decode failures by reason.",
		},
		[]string{"reason"},
	)
	bytecodeSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "solcver",
			Name:      "bytecode_bytes",
			Help:      "Size of submitted bytecode buffers.",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 12),
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, inferences, decodeFailures, bytecodeSize)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordInference counts one inference. reason is the decode failure label
// for the absent era and empty otherwise.
func RecordInference(era, reason string, size int) {
	RegisterMetrics()
	inferences.WithLabelValues(era).Inc()
	bytecodeSize.Observe(float64(size))
	if reason != "" {
		decodeFailures.WithLabelValues(reason).Inc()
	}
}

func RecordDecodeFailure(reason string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(reason).Inc()
}

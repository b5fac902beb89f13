package monplan

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics holds the gateway's Prometheus collectors.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates gateway metrics registered on reg. A nil registerer
// yields working but unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "muse",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Remote calls issued, by endpoint route and outcome",
		}, []string{"endpoint", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "muse",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Remote call latency in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) observe(route string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.Requests.WithLabelValues(route, outcome).Inc()
	m.Duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

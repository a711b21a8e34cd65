package twitter

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports request outcomes to Prometheus. Use its Hook as
// Config.MetricsHook.
type Metrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	remaining *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "twitter_requests_total",
			Help: "Twitter API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "twitter_request_duration_seconds",
			Help:    "Twitter API call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		remaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "twitter_rate_limit_remaining",
			Help: "Calls remaining in the current rate-limit window.",
		}, []string{"endpoint"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration, m.remaining} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hook records one outcome.
func (m *Metrics) Hook(o RequestOutcome) {
	m.requests.WithLabelValues(o.Method, outcomeLabel(o)).Inc()
	m.duration.WithLabelValues(o.Method).Observe(o.Duration.Seconds())
	if o.RateLimit != nil {
		m.remaining.WithLabelValues(o.Endpoint()).Set(float64(o.RateLimit.Remaining))
	}
}

// outcomeLabel is "ok", the HTTP status of an error response, or the kind of
// a transport failure.
func outcomeLabel(o RequestOutcome) string {
	if o.Err == nil {
		return "ok"
	}
	var errResp *ErrorResponse
	if errors.As(o.Err, &errResp) {
		return strconv.Itoa(errResp.Status)
	}
	var httpErr *HTTPError
	if errors.As(o.Err, &httpErr) {
		return httpErr.Kind.String()
	}
	return "error"
}

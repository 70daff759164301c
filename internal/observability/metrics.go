package observability

import (
	"io"
	"net/http"
	"time"

	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// Materialization outcomes recorded by ObserveMaterialize.
const (
	MaterializeCreated  = "created"
	MaterializeNoop     = "noop"
	MaterializeLockBusy = "lock_busy"
	MaterializeFailed   = "failed"
)

// Metrics is a small Prometheus text-format registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	materializeRuns *CounterVec
	materializedLog *CounterVec
	analyticsReads  *CounterVec
}

func NewMetrics(log *logger.Logger) *Metrics {
	m := &Metrics{
		apiRequests: NewCounterVec("routinely_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"routinely_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:     NewGauge("routinely_api_inflight_requests", "In-flight API requests."),
		materializeRuns: NewCounterVec("routinely_materialize_runs_total", "Daily log generation runs by outcome.", []string{"outcome"}),
		materializedLog: NewCounterVec("routinely_materialized_logs_total", "Pending daily logs created by generation runs.", []string{}),
		analyticsReads:  NewCounterVec("routinely_analytics_reads_total", "Analytics computations by report kind.", []string{"kind"}),
	}
	if log != nil {
		log.Info("Observability metrics enabled")
	}
	return m
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, c := range []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.materializeRuns,
		m.materializedLog,
		m.analyticsReads,
	} {
		if err := c.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveMaterialize(outcome string, created int) {
	if m == nil {
		return
	}
	m.materializeRuns.Inc(outcome)
	if created > 0 {
		m.materializedLog.Add(float64(created))
	}
}

func (m *Metrics) IncAnalytics(kind string) {
	if m == nil {
		return
	}
	m.analyticsReads.Inc(kind)
}

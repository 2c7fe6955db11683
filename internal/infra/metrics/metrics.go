// Package metrics registers the Prometheus collectors of the verification workflow.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "photoverify"

// Recorder holds the workflow collectors. A nil Recorder records nothing.
type Recorder struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	submissionsCreated  *prometheus.CounterVec
	submissionDecisions *prometheus.CounterVec
	progressDuration    *prometheus.HistogramVec
	notificationsSent   *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewRecorder registers the collectors on the default registry
func NewRecorder() *Recorder {
	return NewRecorderWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewRecorderWithRegistry registers the collectors on reg and serves them from gatherer
func NewRecorderWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		registerer: reg,
		gatherer:   gatherer,
		submissionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_created_total",
				Help:      "Total number of photo submissions created",
			},
			[]string{"brand_id"},
		),
		submissionDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submission_decisions_total",
				Help:      "Total number of review decisions by resulting status",
			},
			[]string{"status"},
		),
		progressDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "progress_computation_duration_seconds",
				Help:      "Duration of progress aggregation in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"scope"},
		),
		notificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Total number of push notifications by event type and outcome",
			},
			[]string{"event_type", "outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by server, route and status",
			},
			[]string{"server", "method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"server", "route"},
		),
	}
}

// SubmissionCreated counts a stored submission.
func (r *Recorder) SubmissionCreated(brandID string) {
	if r == nil {
		return
	}
	r.submissionsCreated.WithLabelValues(brandID).Inc()
}

// SubmissionDecided counts a review decision.
func (r *Recorder) SubmissionDecided(status string) {
	if r == nil {
		return
	}
	r.submissionDecisions.WithLabelValues(status).Inc()
}

// ObserveProgress records how long a progress computation took.
func (r *Recorder) ObserveProgress(scope string, started time.Time) {
	if r == nil {
		return
	}
	r.progressDuration.WithLabelValues(scope).Observe(time.Since(started).Seconds())
}

// NotificationSent counts a push notification attempt.
func (r *Recorder) NotificationSent(eventType, outcome string) {
	if r == nil {
		return
	}
	r.notificationsSent.WithLabelValues(eventType, outcome).Inc()
}

// ObserveHTTP records a served request. route is the matched route pattern, not the raw path.
func (r *Recorder) ObserveHTTP(server, method, route string, status int, latency time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(server, method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(server, route).Observe(latency.Seconds())
}

// RegisterDBStats exposes the connection pool statistics of db.
func (r *Recorder) RegisterDBStats(db *sql.DB, name string) error {
	if r == nil {
		return nil
	}

	return errors.Wrap(r.registerer.Register(collectors.NewDBStatsCollector(db, name)), "register db stats")
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

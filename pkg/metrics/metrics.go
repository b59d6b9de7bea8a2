package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Buckets tuned for request handling and single-statement queries (1ms .. 10s)
	LatencyBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: LatencyBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Client Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: LatencyBuckets,
		},
		[]string{"operation", "status"},
	)

	DBOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Mail Dispatch Metrics
	MailDispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_dispatch_duration_seconds",
			Help:    "Mail dispatch duration in seconds, including retries",
			Buckets: LatencyBuckets,
		},
		[]string{"kind", "status"},
	)

	MailDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_dispatch_total",
			Help: "Total number of mail dispatch attempts",
		},
		[]string{"kind", "status"},
	)

	// Session Metrics
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mentorhub_active_sessions",
			Help: "Number of live sessions in the session store",
		},
	)

	// Business Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_auth_attempts_total",
			Help: "Registration, login and logout attempts by outcome",
		},
		[]string{"operation", "status"},
	)

	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_messages_sent_total",
			Help: "Total number of send-message attempts",
		},
		[]string{"status"},
	)

	ContactTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_contact_transitions_total",
			Help: "Friend request state transitions",
		},
		[]string{"to_status"},
	)

	MentorshipTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_mentorship_transitions_total",
			Help: "Mentorship request state transitions",
		},
		[]string{"to_status"},
	)

	PasswordResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_password_reset_total",
			Help: "Password reset flow steps by outcome",
		},
		[]string{"stage", "status"},
	)

	TaskOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_task_operations_total",
			Help: "Task create/delete operations by outcome",
		},
		[]string{"operation", "status"},
	)

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentorhub_search_results_returned",
			Help:    "Number of users returned per search",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects runtime metrics every 15s until ctx is done
func RecordInfrastructureMetrics(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// RecordDBOperation records a database operation outcome
func RecordDBOperation(operation, status string, duration float64) {
	DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
	DBOperationTotal.WithLabelValues(operation, status).Inc()
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	paymentsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_confirmed_total",
			Help: "Total number of payments confirmed by an admin",
		},
	)

	signalsBroadcast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signals_broadcast_total",
			Help: "Signal messages delivered to paid users",
		},
		[]string{"outcome"},
	)

	followupsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "followups_sent_total",
			Help: "Follow-up messages dispatched per channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordPaymentConfirmed() {
	paymentsConfirmed.Inc()
}

func RecordSignalBroadcast(sent, failed int) {
	signalsBroadcast.WithLabelValues("sent").Add(float64(sent))
	signalsBroadcast.WithLabelValues("failed").Add(float64(failed))
}

func RecordFollowupDispatch(channel string, sent, failed int) {
	followupsSent.WithLabelValues(channel, "sent").Add(float64(sent))
	followupsSent.WithLabelValues(channel, "failed").Add(float64(failed))
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}

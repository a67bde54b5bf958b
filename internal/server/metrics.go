package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	db "care/line/internal/db/sqlc"
)

const (
	actionCreate           = "create"
	actionSelfAssign       = "self_assign"
	actionStatusUpdate     = "status_update"
	actionForward          = "forward"
	actionHospitalResponse = "hospital_response"
	actionAssignAmbulance  = "assign_ambulance"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_http_requests_total",
		Help: "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	httpRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	requestTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_transitions_total",
		Help: "Ambulance request transitions by action and resulting status.",
	}, []string{"action", "status"})

	hospitalResponseDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "api_hospital_response_duration_seconds",
		Help:    "Time between forwarding a request and the hospital's decision.",
		Buckets: []float64{30, 60, 120, 300, 600, 1800, 3600, 7200},
	})

	requestResolutionDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "api_request_resolution_duration_seconds",
		Help:    "Time between request creation and completion.",
		Buckets: []float64{300, 600, 1800, 3600, 7200, 14400, 43200, 86400},
	})

	requestsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "api_requests_by_status",
		Help: "Current number of ambulance requests per status.",
	}, []string{"status"})
)

func observeTransition(action string, status db.RequestStatus) {
	requestTransitionsTotal.WithLabelValues(action, string(status)).Inc()
}

func observeResolution(row db.AmbulanceRequest) {
	if !row.CreatedAt.Valid {
		return
	}
	requestResolutionDurationSeconds.Observe(time.Since(row.CreatedAt.Time).Seconds())
}

func observeHospitalDecision(row db.AmbulanceRequest) {
	if !row.UpdatedAt.Valid {
		return
	}
	// UpdatedAt was stamped by the forward; the decision lands now.
	hospitalResponseDurationSeconds.Observe(time.Since(row.UpdatedAt.Time).Seconds())
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		httpRequestDurationSeconds.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// StartRequestMetricsSync refreshes the per-status request gauge on a fixed
// interval until ctx is cancelled.
func StartRequestMetricsSync(ctx context.Context, q db.Querier, log zerolog.Logger, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		syncRequestGauges(ctx, q, log)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				syncRequestGauges(ctx, q, log)
			}
		}
	}()
}

func syncRequestGauges(ctx context.Context, q db.Querier, log zerolog.Logger) {
	rows, err := q.CountAmbulanceRequestsByStatus(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to sync request status gauges")
		return
	}
	requestsByStatus.Reset()
	for _, row := range rows {
		requestsByStatus.WithLabelValues(string(row.Status)).Set(float64(row.Count))
	}
}

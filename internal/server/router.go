package server

import (
	"net/http"
	"time"

	"care/line/internal/dispatch"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://careline.example.org", "https://app.careline.example.org"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(api chi.Router) {
		// All API routes require a valid bearer token.
		api.Use(s.authMw.Middleware)

		customer := s.requireRole(dispatch.RoleCustomer)
		staffOrAdmin := s.requireRole(dispatch.RoleStaff, dispatch.RoleAdmin)
		admin := s.requireRole(dispatch.RoleAdmin)
		hospital := s.requireRole(dispatch.RoleHospital)
		adminOrHospital := s.requireRole(dispatch.RoleAdmin, dispatch.RoleHospital)

		api.With(customer).Post("/ambulance", s.handleCreateRequest)
		api.With(staffOrAdmin).Get("/ambulance", s.handleListRequests)
		api.With(customer).Get("/ambulance/customer", s.handleListCustomerRequests)
		api.With(admin).Get("/ambulance/pending", s.handleListPendingRequests)
		api.Get("/ambulance/{requestID}", s.handleGetRequest)
		api.With(s.requireRole(dispatch.RoleStaff)).Post("/ambulance/{requestID}/assign", s.handleSelfAssign)
		api.With(staffOrAdmin).Put("/ambulance/{requestID}/status", s.handleUpdateStatus)
		api.With(admin).Post("/ambulance/{requestID}/forward-to-hospital", s.handleForwardToHospital)
		api.With(hospital).Post("/ambulance/{requestID}/hospital-response", s.handleHospitalResponse)
		api.With(hospital).Post("/ambulance/{requestID}/assign-ambulance", s.handleAssignAmbulance)
		api.With(adminOrHospital).Post("/ambulance/{requestID}/mark-read", s.handleMarkRequestRead)

		api.With(admin).Get("/hospitals/by-state/{state}", s.handleListHospitalsByState)

		api.With(hospital).Get("/hospital/ambulances", s.handleListFleet)
		api.With(hospital).Post("/hospital/ambulances", s.handleCreateFleetAmbulance)
		api.With(hospital).Patch("/hospital/ambulances/{ambulanceID}/status", s.handleUpdateFleetStatus)

		api.Get("/notifications", s.handleListNotifications)
		api.Get("/notifications/unread-count", s.handleUnreadCount)
		api.Post("/notifications/{notificationID}/read", s.handleMarkNotificationRead)
		api.Post("/notifications/read-all", s.handleMarkAllNotificationsRead)

		api.With(staffOrAdmin).Get("/sync", s.handleSync)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		duration := time.Since(start)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", duration).
			Msg("http request")
	})
}

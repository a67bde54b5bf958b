package server

import (
	"net/http"
	"time"
)

// handleHealth godoc
// @Title Health check
// @Resource Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Route /healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Env:    s.cfg.Env,
		Uptime: time.Since(s.startedAt).Round(time.Second).String(),
	})
}

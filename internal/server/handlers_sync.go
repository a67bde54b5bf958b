package server

import (
	"net/http"

	db "care/line/internal/db/sqlc"
)

// handleSync godoc
// @Title Dashboard sync
// @Description Returns the request board plus the caller's notification state
// @Description in one round trip, for the polling dashboard.
// @Resource Sync
// @Produce json
// @Param limit query int false "Maximum requests" default(50)
// @Param offset query int false "Requests offset" default(0)
// @Success 200 {object} SyncResponse
// @Failure 500 {object} APIError
// @Route /api/sync [get]
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())
	limit, offset := s.paginate(r, 50)

	rows, err := s.queries.ListAmbulanceRequests(r.Context(), db.ListAmbulanceRequestsParams{Limit: limit, Offset: offset})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list requests for sync")
		s.writeError(w, http.StatusInternalServerError, "failed to sync", nil)
		return
	}

	unread, err := s.queries.CountUnreadNotifications(r.Context(), claims.UserID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count unread notifications for sync")
		s.writeError(w, http.StatusInternalServerError, "failed to sync", nil)
		return
	}

	recent, err := s.queries.ListNotificationsByUser(r.Context(), db.ListNotificationsByUserParams{
		UserID: claims.UserID,
		Limit:  10,
		Offset: 0,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list notifications for sync")
		s.writeError(w, http.StatusInternalServerError, "failed to sync", nil)
		return
	}

	resp := SyncResponse{
		Requests:            make([]AmbulanceRequestResponse, 0, len(rows)),
		UnreadNotifications: unread,
		RecentNotifications: make([]NotificationResponse, 0, len(recent)),
	}
	for _, row := range rows {
		resp.Requests = append(resp.Requests, mapRequestRow(listRowData(row)))
	}
	for _, n := range recent {
		resp.RecentNotifications = append(resp.RecentNotifications, mapNotification(n))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

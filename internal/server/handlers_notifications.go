package server

import (
	"net/http"

	db "care/line/internal/db/sqlc"
)

// handleListNotifications godoc
// @Title List notifications
// @Resource Notifications
// @Produce json
// @Param limit query int false "Maximum results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {array} NotificationResponse
// @Failure 500 {object} APIError
// @Route /api/notifications [get]
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())
	limit, offset := s.paginate(r, 20)

	rows, err := s.queries.ListNotificationsByUser(r.Context(), db.ListNotificationsByUserParams{
		UserID: claims.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list notifications")
		s.writeError(w, http.StatusInternalServerError, "failed to list notifications", nil)
		return
	}

	resp := make([]NotificationResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapNotification(row))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleUnreadCount godoc
// @Title Count unread notifications
// @Resource Notifications
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Failure 500 {object} APIError
// @Route /api/notifications/unread-count [get]
func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	count, err := s.queries.CountUnreadNotifications(r.Context(), claims.UserID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count unread notifications")
		s.writeError(w, http.StatusInternalServerError, "failed to count notifications", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, UnreadCountResponse{Count: count})
}

// handleMarkNotificationRead godoc
// @Title Mark notification as read
// @Resource Notifications
// @Produce json
// @Param notificationID path int true "Notification ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/notifications/{notificationID}/read [post]
func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	notificationID, err := s.parseIDParam(r, "notificationID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidNotificationID, err.Error())
		return
	}

	rows, err := s.queries.MarkNotificationRead(r.Context(), db.MarkNotificationReadParams{
		ID:     notificationID,
		UserID: claims.UserID,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to mark notification read")
		s.writeError(w, http.StatusInternalServerError, "failed to mark notification read", nil)
		return
	}
	if rows == 0 {
		s.writeError(w, http.StatusNotFound, "notification not found", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "notification marked as read"})
}

// handleMarkAllNotificationsRead godoc
// @Title Mark all notifications as read
// @Resource Notifications
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} APIError
// @Route /api/notifications/read-all [post]
func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	if err := s.queries.MarkAllNotificationsRead(r.Context(), claims.UserID); err != nil {
		s.log.Error().Err(err).Msg("failed to mark notifications read")
		s.writeError(w, http.StatusInternalServerError, "failed to mark notifications read", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "all notifications marked as read"})
}

func mapNotification(row db.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        row.ID,
		Type:      row.Type,
		Title:     row.Title,
		Message:   row.Message,
		RelatedID: row.RelatedID,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt.Time,
	}
}

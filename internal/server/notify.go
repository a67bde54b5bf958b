package server

import (
	"context"

	db "care/line/internal/db/sqlc"
)

const notificationTypeAmbulance = "ambulance"

// notify writes a notification for one user. Delivery is best-effort: a
// failed insert is logged and never fails the operation that triggered it.
func (s *Server) notify(ctx context.Context, userID int64, title, message string, relatedID int64) {
	_, err := s.queries.CreateNotification(ctx, db.CreateNotificationParams{
		UserID:    userID,
		Type:      notificationTypeAmbulance,
		Title:     title,
		Message:   message,
		RelatedID: int64Ptr(relatedID),
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Int64("related_id", relatedID).Msg("failed to create notification")
	}
}

func (s *Server) notifyCustomer(ctx context.Context, row db.AmbulanceRequest, title, message string) {
	s.notify(ctx, row.CustomerID, title, message, row.ID)
}

// notifyJurisdictionAdmins fans a notification out to every system-level
// admin, plus the state-level admins for the request's state when it has one.
func (s *Server) notifyJurisdictionAdmins(ctx context.Context, state *string, title, message string, requestID int64) {
	admins, err := s.queries.ListSystemAdmins(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list system admins for notification")
	}
	for _, admin := range admins {
		s.notify(ctx, admin.ID, title, message, requestID)
	}

	if state == nil || *state == "" {
		return
	}
	stateAdmins, err := s.queries.ListStateAdmins(ctx, state)
	if err != nil {
		s.log.Error().Err(err).Str("state", *state).Msg("failed to list state admins for notification")
		return
	}
	for _, admin := range stateAdmins {
		s.notify(ctx, admin.ID, title, message, requestID)
	}
}

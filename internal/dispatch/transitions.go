// Package dispatch holds the ambulance request state machine rules.
// Handlers consult it before writing; the writes themselves re-check their
// preconditions in SQL so racing callers cannot both succeed.
package dispatch

import (
	db "care/line/internal/db/sqlc"
)

// Roles issued by the identity provider.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
	RoleHospital = "hospital"
)

// staffTargets are the only statuses reachable through the staff/admin status
// update endpoint. Forwarding and hospital responses have dedicated paths.
var staffTargets = map[db.RequestStatus]struct{}{
	db.RequestStatusAssigned:  {},
	db.RequestStatusOnTheWay:  {},
	db.RequestStatusCompleted: {},
	db.RequestStatusCancelled: {},
}

// transitionMap lists, per target status, the statuses a request may be in
// for the transition to be legal.
var transitionMap = map[db.RequestStatus][]db.RequestStatus{
	db.RequestStatusAssigned: {
		db.RequestStatusPending,
		db.RequestStatusAssigned,
	},
	db.RequestStatusOnTheWay: {
		db.RequestStatusAssigned,
		db.RequestStatusHospitalAccepted,
	},
	db.RequestStatusCompleted: {
		db.RequestStatusAssigned,
		db.RequestStatusHospitalAccepted,
		db.RequestStatusOnTheWay,
	},
	db.RequestStatusForwardedToHospital: {
		db.RequestStatusPending,
		db.RequestStatusAssigned,
		db.RequestStatusForwardedToHospital,
		db.RequestStatusHospitalRejected,
	},
	db.RequestStatusHospitalAccepted: {
		db.RequestStatusForwardedToHospital,
	},
	db.RequestStatusHospitalRejected: {
		db.RequestStatusForwardedToHospital,
	},
}

// StaffTarget reports whether the status is reachable through the generic
// status update endpoint.
func StaffTarget(to db.RequestStatus) bool {
	_, ok := staffTargets[to]
	return ok
}

// IsTerminal reports whether no further transition may leave the status.
func IsTerminal(s db.RequestStatus) bool {
	return s == db.RequestStatusCompleted || s == db.RequestStatusCancelled
}

// CanTransition reports whether a request currently in from may move to to.
// Cancellation is legal from every non-terminal state.
func CanTransition(from, to db.RequestStatus) bool {
	for _, allowed := range AllowedPriors(to) {
		if allowed == from {
			return true
		}
	}
	return false
}

// AllowedPriors lists the statuses a request may hold for a transition to
// the target to be legal. Writes embed this list in the UPDATE's WHERE
// clause, so the transition check and the write are one atomic step.
func AllowedPriors(to db.RequestStatus) []db.RequestStatus {
	if to == db.RequestStatusCancelled {
		return []db.RequestStatus{
			db.RequestStatusPending,
			db.RequestStatusAssigned,
			db.RequestStatusForwardedToHospital,
			db.RequestStatusHospitalAccepted,
			db.RequestStatusHospitalRejected,
			db.RequestStatusOnTheWay,
		}
	}
	return append([]db.RequestStatus(nil), transitionMap[to]...)
}

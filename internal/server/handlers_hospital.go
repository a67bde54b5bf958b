package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	db "care/line/internal/db/sqlc"
	"care/line/internal/dispatch"
)

type ForwardRequestRequest struct {
	HospitalID int64 `json:"hospital_id" validate:"required,gt=0"`
}

type HospitalResponseRequest struct {
	Response string  `json:"response" validate:"required,oneof=accepted rejected"`
	Notes    *string `json:"notes"`
}

type AssignAmbulanceRequest struct {
	AmbulanceID int64 `json:"ambulance_id" validate:"required,gt=0"`
}

type CreateFleetAmbulanceRequest struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required"`
	VehicleModel  *string `json:"vehicle_model"`
	DriverName    *string `json:"driver_name"`
	DriverContact *string `json:"driver_contact"`
}

type UpdateFleetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available maintenance parked"`
}

// handleForwardToHospital godoc
// @Title Forward request to hospital
// @Description Forwards a request to a hospital, resetting any earlier
// @Description hospital decision. Repeating the call re-notifies the target.
// @Resource Ambulance
// @Accept json
// @Produce json
// @Param requestID path int true "Request ID"
// @Param request body ForwardRequestRequest true "Forward payload"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/forward-to-hospital [post]
func (s *Server) handleForwardToHospital(w http.ResponseWriter, r *http.Request) {
	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	var req ForwardRequestRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	// An id that does not resolve to a hospital account reads as missing.
	hospital, err := s.queries.GetAccount(r.Context(), req.HospitalID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "hospital not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch hospital account")
		s.writeError(w, http.StatusInternalServerError, "failed to forward request", nil)
		return
	}
	if hospital.Role != db.AccountRoleHospital {
		s.writeError(w, http.StatusNotFound, "hospital not found", nil)
		return
	}

	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch ambulance request")
		s.writeError(w, http.StatusInternalServerError, "failed to forward request", nil)
		return
	}
	if !dispatch.CanTransition(current.Status, db.RequestStatusForwardedToHospital) {
		s.writeError(w, http.StatusConflict, "request cannot be forwarded", string(current.Status))
		return
	}

	// The UPDATE carries the legal prior statuses, so a request completed or
	// cancelled by a racing writer cannot be forwarded back to life.
	row, err := s.queries.ForwardAmbulanceRequest(r.Context(), db.ForwardAmbulanceRequestParams{
		ID:                    requestID,
		ForwardedToHospitalID: int64Ptr(req.HospitalID),
		AllowedFrom:           dispatch.AllowedPriors(db.RequestStatusForwardedToHospital),
	})
	if err != nil {
		if isNotFound(err) {
			s.rejectFailedForward(w, r, requestID)
			return
		}
		s.log.Error().Err(err).Msg("failed to forward request")
		s.writeError(w, http.StatusInternalServerError, "failed to forward request", nil)
		return
	}

	observeTransition(actionForward, row.Status)
	s.notify(r.Context(), req.HospitalID, "Incoming ambulance request",
		fmt.Sprintf("Ambulance request #%d (%s) has been forwarded to your hospital for review.", row.ID, row.EmergencyType),
		row.ID)
	s.notifyCustomer(r.Context(), row, "Request forwarded",
		fmt.Sprintf("Your ambulance request #%d has been forwarded to %s.", row.ID, hospitalLabel(hospital)))

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

func (s *Server) rejectFailedForward(w http.ResponseWriter, r *http.Request, requestID int64) {
	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch request after forward conflict")
		s.writeError(w, http.StatusInternalServerError, "failed to forward request", nil)
		return
	}
	s.writeError(w, http.StatusConflict, "request cannot be forwarded", string(current.Status))
}

func hospitalLabel(a db.Account) string {
	if a.HospitalName != nil && *a.HospitalName != "" {
		return *a.HospitalName
	}
	return a.FullName
}

// handleHospitalResponse godoc
// @Title Record hospital decision
// @Description Accepts or rejects a request forwarded to the calling hospital.
// @Resource Hospital
// @Accept json
// @Produce json
// @Param requestID path int true "Request ID"
// @Param request body HospitalResponseRequest true "Decision payload"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/hospital-response [post]
func (s *Server) handleHospitalResponse(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	var req HospitalResponseRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	response := db.HospitalResponse(req.Response)
	status := db.RequestStatusHospitalAccepted
	if response == db.HospitalResponseRejected {
		status = db.RequestStatusHospitalRejected
	}

	row, err := s.queries.SetHospitalResponse(r.Context(), db.SetHospitalResponseParams{
		ID:                    requestID,
		ForwardedToHospitalID: int64Ptr(claims.UserID),
		HospitalResponse:      db.NullHospitalResponse{HospitalResponse: response, Valid: true},
		HospitalResponseNotes: req.Notes,
		Status:                status,
	})
	if err != nil {
		if isNotFound(err) {
			s.rejectFailedHospitalResponse(w, r, requestID, claims.UserID)
			return
		}
		s.log.Error().Err(err).Msg("failed to record hospital response")
		s.writeError(w, http.StatusInternalServerError, "failed to record response", nil)
		return
	}

	observeTransition(actionHospitalResponse, row.Status)
	observeHospitalDecision(row)
	s.notifyCustomer(r.Context(), row, "Hospital responded",
		fmt.Sprintf("Your ambulance request #%d was %s by the hospital.", row.ID, response))
	s.notifyJurisdictionAdmins(r.Context(), row.CustomerState, "Hospital responded",
		fmt.Sprintf("Ambulance request #%d was %s by hospital #%d.", row.ID, response, claims.UserID),
		row.ID)

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

// rejectFailedHospitalResponse distinguishes a request that is invisible to
// this hospital from one whose decision window has closed.
func (s *Server) rejectFailedHospitalResponse(w http.ResponseWriter, r *http.Request, requestID, hospitalID int64) {
	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch request after response conflict")
		s.writeError(w, http.StatusInternalServerError, "failed to record response", nil)
		return
	}
	if current.ForwardedToHospitalID == nil || *current.ForwardedToHospitalID != hospitalID {
		s.writeError(w, http.StatusNotFound, "request not found", nil)
		return
	}
	s.writeError(w, http.StatusConflict, "hospital response already recorded", nil)
}

// handleAssignAmbulance godoc
// @Title Assign fleet ambulance to request
// @Description Books one of the hospital's ambulances onto a forwarded
// @Description request, accepting the request in the same step.
// @Resource Hospital
// @Accept json
// @Produce json
// @Param requestID path int true "Request ID"
// @Param request body AssignAmbulanceRequest true "Assignment payload"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/assign-ambulance [post]
func (s *Server) handleAssignAmbulance(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	var req AssignAmbulanceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	// Book the vehicle first; the conditional update loses if the ambulance
	// is missing, owned by someone else, or already out on a request.
	ambulance, err := s.queries.AssignHospitalAmbulance(r.Context(), db.AssignHospitalAmbulanceParams{
		ID:                req.AmbulanceID,
		HospitalUserID:    claims.UserID,
		AssignedRequestID: int64Ptr(requestID),
	})
	if err != nil {
		if isNotFound(err) {
			s.rejectFailedAmbulanceBooking(w, r, req.AmbulanceID, claims.UserID)
			return
		}
		s.log.Error().Err(err).Msg("failed to book ambulance")
		s.writeError(w, http.StatusInternalServerError, "failed to assign ambulance", nil)
		return
	}

	row, err := s.queries.AssignAmbulanceToRequest(r.Context(), db.AssignAmbulanceToRequestParams{
		ID:                    requestID,
		AssignedAmbulanceID:   int64Ptr(req.AmbulanceID),
		ForwardedToHospitalID: int64Ptr(claims.UserID),
	})
	if err != nil {
		// Undo the booking so the vehicle does not stay parked on a request
		// that never took it.
		if relErr := s.queries.ReleaseAmbulanceForRequest(r.Context(), int64Ptr(requestID)); relErr != nil {
			s.log.Error().Err(relErr).Int64("ambulance_id", req.AmbulanceID).Msg("failed to release ambulance after assignment failure")
		}
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to assign ambulance to request")
		s.writeError(w, http.StatusInternalServerError, "failed to assign ambulance", nil)
		return
	}

	observeTransition(actionAssignAmbulance, row.Status)
	s.notifyCustomer(r.Context(), row, "Ambulance assigned",
		fmt.Sprintf("Ambulance %s (driver %s) has been assigned to your request #%d.",
			ambulance.VehicleNumber, optionalString(ambulance.DriverName), row.ID))

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

func (s *Server) rejectFailedAmbulanceBooking(w http.ResponseWriter, r *http.Request, ambulanceID, hospitalID int64) {
	ambulance, err := s.queries.GetHospitalAmbulance(r.Context(), ambulanceID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "ambulance not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch ambulance after booking conflict")
		s.writeError(w, http.StatusInternalServerError, "failed to assign ambulance", nil)
		return
	}
	if ambulance.HospitalUserID != hospitalID {
		s.writeError(w, http.StatusNotFound, "ambulance not found", nil)
		return
	}
	s.writeError(w, http.StatusConflict, "ambulance already assigned", nil)
}

// handleMarkRequestRead godoc
// @Title Mark request as read
// @Resource Ambulance
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/mark-read [post]
func (s *Server) handleMarkRequestRead(w http.ResponseWriter, r *http.Request) {
	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	rows, err := s.queries.MarkAmbulanceRequestRead(r.Context(), requestID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to mark request read")
		s.writeError(w, http.StatusInternalServerError, "failed to mark request read", nil)
		return
	}
	if rows == 0 {
		s.writeError(w, http.StatusNotFound, "request not found", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "request marked as read"})
}

// handleListHospitalsByState godoc
// @Title List hospitals by state
// @Description Lists hospital accounts in a state, for the forwarding picker.
// @Resource Hospital
// @Produce json
// @Param state path string true "State name"
// @Success 200 {array} HospitalSummaryResponse
// @Failure 500 {object} APIError
// @Route /api/hospitals/by-state/{state} [get]
func (s *Server) handleListHospitalsByState(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")

	rows, err := s.queries.ListHospitalsByState(r.Context(), strPtr(state))
	if err != nil {
		s.log.Error().Err(err).Str("state", state).Msg("failed to list hospitals")
		s.writeError(w, http.StatusInternalServerError, "failed to list hospitals", nil)
		return
	}

	resp := make([]HospitalSummaryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, HospitalSummaryResponse{
			ID:           row.ID,
			HospitalName: hospitalLabel(row),
			State:        optionalString(row.State),
			District:     optionalString(row.District),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleListFleet godoc
// @Title List fleet ambulances
// @Resource Hospital
// @Produce json
// @Success 200 {array} FleetAmbulanceResponse
// @Failure 500 {object} APIError
// @Route /api/hospital/ambulances [get]
func (s *Server) handleListFleet(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	rows, err := s.queries.ListHospitalAmbulances(r.Context(), claims.UserID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list fleet")
		s.writeError(w, http.StatusInternalServerError, "failed to list ambulances", nil)
		return
	}

	resp := make([]FleetAmbulanceResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapFleetAmbulance(row))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleCreateFleetAmbulance godoc
// @Title Register fleet ambulance
// @Resource Hospital
// @Accept json
// @Produce json
// @Param request body CreateFleetAmbulanceRequest true "Ambulance payload"
// @Success 201 {object} FleetAmbulanceResponse
// @Failure 400 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/hospital/ambulances [post]
func (s *Server) handleCreateFleetAmbulance(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	var req CreateFleetAmbulanceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	row, err := s.queries.CreateHospitalAmbulance(r.Context(), db.CreateHospitalAmbulanceParams{
		HospitalUserID: claims.UserID,
		VehicleNumber:  req.VehicleNumber,
		VehicleModel:   req.VehicleModel,
		DriverName:     req.DriverName,
		DriverContact:  req.DriverContact,
	})
	if err != nil {
		if isUniqueViolation(err) {
			s.writeError(w, http.StatusConflict, "vehicle number already registered", req.VehicleNumber)
			return
		}
		s.log.Error().Err(err).Msg("failed to register ambulance")
		s.writeError(w, http.StatusInternalServerError, "failed to register ambulance", nil)
		return
	}

	s.writeJSON(w, http.StatusCreated, mapFleetAmbulance(row))
}

// handleUpdateFleetStatus godoc
// @Title Update fleet ambulance status
// @Description Sets an ambulance to available, maintenance or parked and
// @Description clears any request it was booked on.
// @Resource Hospital
// @Accept json
// @Produce json
// @Param ambulanceID path int true "Ambulance ID"
// @Param request body UpdateFleetStatusRequest true "Status payload"
// @Success 200 {object} FleetAmbulanceResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/hospital/ambulances/{ambulanceID}/status [patch]
func (s *Server) handleUpdateFleetStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	ambulanceID, err := s.parseIDParam(r, "ambulanceID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidAmbulanceID, err.Error())
		return
	}

	var req UpdateFleetStatusRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	row, err := s.queries.UpdateHospitalAmbulanceStatus(r.Context(), db.UpdateHospitalAmbulanceStatusParams{
		ID:             ambulanceID,
		HospitalUserID: claims.UserID,
		Status:         db.AmbulanceStatus(req.Status),
	})
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "ambulance not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to update ambulance status")
		s.writeError(w, http.StatusInternalServerError, "failed to update ambulance", nil)
		return
	}

	s.writeJSON(w, http.StatusOK, mapFleetAmbulance(row))
}

func mapFleetAmbulance(row db.HospitalAmbulance) FleetAmbulanceResponse {
	return FleetAmbulanceResponse{
		ID:                row.ID,
		VehicleNumber:     row.VehicleNumber,
		VehicleModel:      optionalString(row.VehicleModel),
		DriverName:        optionalString(row.DriverName),
		DriverContact:     optionalString(row.DriverContact),
		Status:            string(row.Status),
		AssignedRequestID: row.AssignedRequestID,
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}

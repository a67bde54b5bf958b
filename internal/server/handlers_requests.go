package server

import (
	"fmt"
	"net/http"

	db "care/line/internal/db/sqlc"
	"care/line/internal/dispatch"
	"care/line/internal/geo"
)

type CreateAmbulanceRequestRequest struct {
	PickupAddress      string  `json:"pickup_address" validate:"required"`
	DestinationAddress string  `json:"destination_address"`
	EmergencyType      string  `json:"emergency_type" validate:"required"`
	ContactNumber      string  `json:"contact_number" validate:"required"`
	Priority           string  `json:"priority" validate:"omitempty,priority"`
	CustomerCondition  *string `json:"customer_condition"`
}

type UpdateRequestStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=assigned on_the_way completed cancelled"`
	Notes  *string `json:"notes"`
}

// handleCreateRequest godoc
// @Title Create ambulance request
// @Description Registers a new ambulance request for the calling customer.
// @Resource Ambulance
// @Accept json
// @Produce json
// @Param request body CreateAmbulanceRequestRequest true "Request payload"
// @Success 201 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance [post]
func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	var req CreateAmbulanceRequestRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	destination := req.DestinationAddress
	if destination == "" {
		destination = "Nearest Hospital"
	}
	priority := db.RequestPriority(req.Priority)
	if priority == "" {
		priority = db.RequestPriorityNormal
	}

	// Jurisdiction resolution is best-effort: a geocoder outage degrades to a
	// request without state/district, never to a failed creation.
	region, err := s.regions.Resolve(r.Context(), req.PickupAddress)
	if err != nil {
		s.log.Warn().Err(err).Str("pickup_address", req.PickupAddress).Msg("jurisdiction resolution failed")
		region = geo.Region{}
	}

	row, err := s.queries.CreateAmbulanceRequest(r.Context(), db.CreateAmbulanceRequestParams{
		CustomerID:         claims.UserID,
		PickupAddress:      req.PickupAddress,
		DestinationAddress: destination,
		EmergencyType:      req.EmergencyType,
		ContactNumber:      req.ContactNumber,
		Priority:           priority,
		CustomerCondition:  req.CustomerCondition,
		CustomerState:      strPtr(region.State),
		CustomerDistrict:   strPtr(region.District),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create ambulance request")
		s.writeError(w, http.StatusInternalServerError, "failed to create request", nil)
		return
	}

	observeTransition(actionCreate, row.Status)
	s.notifyJurisdictionAdmins(r.Context(), row.CustomerState, "New ambulance request",
		fmt.Sprintf("Ambulance request #%d (%s) was submitted and is awaiting triage.", row.ID, row.EmergencyType),
		row.ID)

	s.writeJSON(w, http.StatusCreated, mapRequest(row))
}

// handleListRequests godoc
// @Title List ambulance requests
// @Description Lists every request ordered by priority rank then recency.
// @Resource Ambulance
// @Produce json
// @Param limit query int false "Maximum results" default(50)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {array} AmbulanceRequestResponse
// @Failure 500 {object} APIError
// @Route /api/ambulance [get]
func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset := s.paginate(r, 50)
	rows, err := s.queries.ListAmbulanceRequests(r.Context(), db.ListAmbulanceRequestsParams{Limit: limit, Offset: offset})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list ambulance requests")
		s.writeError(w, http.StatusInternalServerError, "failed to list requests", nil)
		return
	}

	resp := make([]AmbulanceRequestResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapRequestRow(listRowData(row)))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleListCustomerRequests godoc
// @Title List own ambulance requests
// @Description Lists the calling customer's requests.
// @Resource Ambulance
// @Produce json
// @Param limit query int false "Maximum results" default(50)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {array} AmbulanceRequestResponse
// @Failure 500 {object} APIError
// @Route /api/ambulance/customer [get]
func (s *Server) handleListCustomerRequests(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())
	limit, offset := s.paginate(r, 50)

	rows, err := s.queries.ListAmbulanceRequestsByCustomer(r.Context(), db.ListAmbulanceRequestsByCustomerParams{
		CustomerID: claims.UserID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list customer requests")
		s.writeError(w, http.StatusInternalServerError, "failed to list requests", nil)
		return
	}

	resp := make([]AmbulanceRequestResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapRequestRow(customerRowData(row)))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleListPendingRequests godoc
// @Title List pending ambulance requests
// @Description Lists requests awaiting triage, for the admin forwarding view.
// @Resource Ambulance
// @Produce json
// @Param limit query int false "Maximum results" default(50)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {array} AmbulanceRequestResponse
// @Failure 500 {object} APIError
// @Route /api/ambulance/pending [get]
func (s *Server) handleListPendingRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset := s.paginate(r, 50)
	rows, err := s.queries.ListPendingAmbulanceRequests(r.Context(), db.ListPendingAmbulanceRequestsParams{Limit: limit, Offset: offset})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list pending requests")
		s.writeError(w, http.StatusInternalServerError, "failed to list requests", nil)
		return
	}

	resp := make([]AmbulanceRequestResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapRequestRow(pendingRowData(row)))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleGetRequest godoc
// @Title Get ambulance request
// @Description Returns a single request. Customers see only their own;
// @Description hospitals only requests forwarded to them.
// @Resource Ambulance
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID} [get]
func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	row, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch ambulance request")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch request", nil)
		return
	}

	// Requests outside the caller's visibility read as missing, not forbidden.
	switch claims.Role() {
	case dispatch.RoleCustomer:
		if row.CustomerID != claims.UserID {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
	case dispatch.RoleHospital:
		if row.ForwardedToHospitalID == nil || *row.ForwardedToHospitalID != claims.UserID {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
	}

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

// handleSelfAssign godoc
// @Title Self-assign ambulance request
// @Description Claims a pending, unassigned request for the calling staff member.
// @Resource Ambulance
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/assign [post]
func (s *Server) handleSelfAssign(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	// The WHERE clause carries the precondition, so two staff members racing
	// for the same request cannot both win.
	row, err := s.queries.SelfAssignAmbulanceRequest(r.Context(), db.SelfAssignAmbulanceRequestParams{
		ID:              requestID,
		AssignedStaffID: int64Ptr(claims.UserID),
	})
	if err != nil {
		if isNotFound(err) {
			s.rejectFailedSelfAssign(w, r, requestID)
			return
		}
		s.log.Error().Err(err).Msg("failed to self-assign request")
		s.writeError(w, http.StatusInternalServerError, "failed to assign request", nil)
		return
	}

	observeTransition(actionSelfAssign, row.Status)
	s.notifyCustomer(r.Context(), row, "Request assigned",
		fmt.Sprintf("Your ambulance request #%d has been picked up by our staff.", row.ID))

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

// rejectFailedSelfAssign distinguishes a missing request from one that lost
// the assignment race.
func (s *Server) rejectFailedSelfAssign(w http.ResponseWriter, r *http.Request, requestID int64) {
	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch request after assignment conflict")
		s.writeError(w, http.StatusInternalServerError, "failed to assign request", nil)
		return
	}
	if current.AssignedStaffID != nil {
		s.writeError(w, http.StatusConflict, "request already assigned", nil)
		return
	}
	s.writeError(w, http.StatusConflict, "request is not pending", string(current.Status))
}

// handleUpdateStatus godoc
// @Title Update request status
// @Description Advances or cancels a request. Staff must be the assignee.
// @Resource Ambulance
// @Accept json
// @Produce json
// @Param requestID path int true "Request ID"
// @Param request body UpdateRequestStatusRequest true "Status payload"
// @Success 200 {object} AmbulanceRequestResponse
// @Failure 400 {object} APIError
// @Failure 403 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/ambulance/{requestID}/status [put]
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserFromContext(r.Context())

	requestID, err := s.parseIDParam(r, "requestID")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidRequestID, err.Error())
		return
	}

	var req UpdateRequestStatusRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidPayload, err.Error())
		return
	}

	target := db.RequestStatus(req.Status)
	if !dispatch.StaffTarget(target) {
		s.writeError(w, http.StatusBadRequest, "status not allowed on this path", req.Status)
		return
	}

	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch ambulance request")
		s.writeError(w, http.StatusInternalServerError, "failed to update request", nil)
		return
	}

	if claims.HasRole(dispatch.RoleStaff) && !claims.HasRole(dispatch.RoleAdmin) {
		if current.AssignedStaffID == nil || *current.AssignedStaffID != claims.UserID {
			s.writeError(w, http.StatusForbidden, "request is assigned to another staff member", nil)
			return
		}
	}

	if !dispatch.CanTransition(current.Status, target) {
		s.writeError(w, http.StatusConflict, "illegal status transition",
			fmt.Sprintf("%s -> %s", current.Status, target))
		return
	}

	// The legal prior statuses travel with the UPDATE, so a transition that
	// races another writer loses in the database, not just in the check above.
	row, err := s.queries.UpdateAmbulanceRequestStatus(r.Context(), db.UpdateAmbulanceRequestStatusParams{
		ID:          requestID,
		Status:      target,
		StatusNotes: req.Notes,
		AllowedFrom: dispatch.AllowedPriors(target),
	})
	if err != nil {
		if isNotFound(err) {
			s.rejectFailedStatusUpdate(w, r, requestID, target)
			return
		}
		s.log.Error().Err(err).Msg("failed to update request status")
		s.writeError(w, http.StatusInternalServerError, "failed to update request", nil)
		return
	}

	// A finished request frees its ambulance. Failure here leaves the fleet
	// row stale, which the hospital can correct through its own endpoint.
	if dispatch.IsTerminal(row.Status) && row.AssignedAmbulanceID != nil {
		if err := s.queries.ReleaseAmbulanceForRequest(r.Context(), int64Ptr(row.ID)); err != nil {
			s.log.Error().Err(err).Int64("request_id", row.ID).Msg("failed to release ambulance after terminal status")
		}
	}

	observeTransition(actionStatusUpdate, row.Status)
	if row.Status == db.RequestStatusCompleted {
		observeResolution(row)
	}
	s.notifyCustomer(r.Context(), row, "Request status updated",
		fmt.Sprintf("Your ambulance request #%d is now %s.", row.ID, statusLabel(row.Status)))

	s.writeJSON(w, http.StatusOK, mapRequest(row))
}

// rejectFailedStatusUpdate distinguishes a request that vanished from one
// whose status moved between the handler's read and its write.
func (s *Server) rejectFailedStatusUpdate(w http.ResponseWriter, r *http.Request, requestID int64, target db.RequestStatus) {
	current, err := s.queries.GetAmbulanceRequest(r.Context(), requestID)
	if err != nil {
		if isNotFound(err) {
			s.writeError(w, http.StatusNotFound, "request not found", nil)
			return
		}
		s.log.Error().Err(err).Msg("failed to fetch request after status conflict")
		s.writeError(w, http.StatusInternalServerError, "failed to update request", nil)
		return
	}
	s.writeError(w, http.StatusConflict, "illegal status transition",
		fmt.Sprintf("%s -> %s", current.Status, target))
}

// statusLabel renders a status enum for customer-facing notification text.
func statusLabel(status db.RequestStatus) string {
	switch status {
	case db.RequestStatusOnTheWay:
		return "on the way"
	case db.RequestStatusForwardedToHospital:
		return "forwarded to a hospital"
	case db.RequestStatusHospitalAccepted:
		return "accepted by the hospital"
	case db.RequestStatusHospitalRejected:
		return "rejected by the hospital"
	default:
		return string(status)
	}
}

type requestRowData struct {
	Request       db.AmbulanceRequest
	CustomerName  string
	StaffName     *string
	HospitalName  *string
	VehicleNumber *string
	DriverName    *string
	DriverContact *string
}

func mapRequest(row db.AmbulanceRequest) AmbulanceRequestResponse {
	return mapRequestRow(requestRowData{Request: row})
}

func mapRequestRow(d requestRowData) AmbulanceRequestResponse {
	r := d.Request
	resp := AmbulanceRequestResponse{
		ID:                    r.ID,
		Reference:             uuidString(r.Reference),
		CustomerID:            r.CustomerID,
		CustomerName:          d.CustomerName,
		PickupAddress:         r.PickupAddress,
		DestinationAddress:    r.DestinationAddress,
		EmergencyType:         r.EmergencyType,
		ContactNumber:         r.ContactNumber,
		Priority:              string(r.Priority),
		CustomerCondition:     optionalString(r.CustomerCondition),
		AssignedStaffID:       r.AssignedStaffID,
		StaffName:             optionalString(d.StaffName),
		AssignedAmbulanceID:   r.AssignedAmbulanceID,
		VehicleNumber:         optionalString(d.VehicleNumber),
		DriverName:            optionalString(d.DriverName),
		DriverContact:         optionalString(d.DriverContact),
		ForwardedToHospitalID: r.ForwardedToHospitalID,
		HospitalName:          optionalString(d.HospitalName),
		HospitalResponseNotes: optionalString(r.HospitalResponseNotes),
		HospitalResponseDate:  timestamptzPtr(r.HospitalResponseDate),
		CustomerState:         optionalString(r.CustomerState),
		CustomerDistrict:      optionalString(r.CustomerDistrict),
		Status:                string(r.Status),
		StatusNotes:           optionalString(r.StatusNotes),
		IsRead:                r.IsRead,
		CreatedAt:             r.CreatedAt.Time,
		UpdatedAt:             r.UpdatedAt.Time,
	}
	if r.HospitalResponse.Valid {
		resp.HospitalResponse = string(r.HospitalResponse.HospitalResponse)
	}
	return resp
}

func listRowData(row db.ListAmbulanceRequestsRow) requestRowData {
	return requestRowData{
		Request: db.AmbulanceRequest{
			ID:                    row.ID,
			Reference:             row.Reference,
			CustomerID:            row.CustomerID,
			PickupAddress:         row.PickupAddress,
			DestinationAddress:    row.DestinationAddress,
			EmergencyType:         row.EmergencyType,
			ContactNumber:         row.ContactNumber,
			Priority:              row.Priority,
			CustomerCondition:     row.CustomerCondition,
			AssignedStaffID:       row.AssignedStaffID,
			AssignedAmbulanceID:   row.AssignedAmbulanceID,
			ForwardedToHospitalID: row.ForwardedToHospitalID,
			HospitalResponse:      row.HospitalResponse,
			HospitalResponseNotes: row.HospitalResponseNotes,
			HospitalResponseDate:  row.HospitalResponseDate,
			CustomerState:         row.CustomerState,
			CustomerDistrict:      row.CustomerDistrict,
			Status:                row.Status,
			StatusNotes:           row.StatusNotes,
			IsRead:                row.IsRead,
			CreatedAt:             row.CreatedAt,
			UpdatedAt:             row.UpdatedAt,
		},
		CustomerName:  row.CustomerName,
		StaffName:     row.StaffName,
		HospitalName:  row.HospitalName,
		VehicleNumber: row.VehicleNumber,
		DriverName:    row.DriverName,
		DriverContact: row.DriverContact,
	}
}

func customerRowData(row db.ListAmbulanceRequestsByCustomerRow) requestRowData {
	return requestRowData{
		Request: db.AmbulanceRequest{
			ID:                    row.ID,
			Reference:             row.Reference,
			CustomerID:            row.CustomerID,
			PickupAddress:         row.PickupAddress,
			DestinationAddress:    row.DestinationAddress,
			EmergencyType:         row.EmergencyType,
			ContactNumber:         row.ContactNumber,
			Priority:              row.Priority,
			CustomerCondition:     row.CustomerCondition,
			AssignedStaffID:       row.AssignedStaffID,
			AssignedAmbulanceID:   row.AssignedAmbulanceID,
			ForwardedToHospitalID: row.ForwardedToHospitalID,
			HospitalResponse:      row.HospitalResponse,
			HospitalResponseNotes: row.HospitalResponseNotes,
			HospitalResponseDate:  row.HospitalResponseDate,
			CustomerState:         row.CustomerState,
			CustomerDistrict:      row.CustomerDistrict,
			Status:                row.Status,
			StatusNotes:           row.StatusNotes,
			IsRead:                row.IsRead,
			CreatedAt:             row.CreatedAt,
			UpdatedAt:             row.UpdatedAt,
		},
		CustomerName:  row.CustomerName,
		StaffName:     row.StaffName,
		HospitalName:  row.HospitalName,
		VehicleNumber: row.VehicleNumber,
		DriverName:    row.DriverName,
		DriverContact: row.DriverContact,
	}
}

func pendingRowData(row db.ListPendingAmbulanceRequestsRow) requestRowData {
	return requestRowData{
		Request: db.AmbulanceRequest{
			ID:                    row.ID,
			Reference:             row.Reference,
			CustomerID:            row.CustomerID,
			PickupAddress:         row.PickupAddress,
			DestinationAddress:    row.DestinationAddress,
			EmergencyType:         row.EmergencyType,
			ContactNumber:         row.ContactNumber,
			Priority:              row.Priority,
			CustomerCondition:     row.CustomerCondition,
			AssignedStaffID:       row.AssignedStaffID,
			AssignedAmbulanceID:   row.AssignedAmbulanceID,
			ForwardedToHospitalID: row.ForwardedToHospitalID,
			HospitalResponse:      row.HospitalResponse,
			HospitalResponseNotes: row.HospitalResponseNotes,
			HospitalResponseDate:  row.HospitalResponseDate,
			CustomerState:         row.CustomerState,
			CustomerDistrict:      row.CustomerDistrict,
			Status:                row.Status,
			StatusNotes:           row.StatusNotes,
			IsRead:                row.IsRead,
			CreatedAt:             row.CreatedAt,
			UpdatedAt:             row.UpdatedAt,
		},
		CustomerName:  row.CustomerName,
		StaffName:     row.StaffName,
		HospitalName:  row.HospitalName,
		VehicleNumber: row.VehicleNumber,
		DriverName:    row.DriverName,
		DriverContact: row.DriverContact,
	}
}

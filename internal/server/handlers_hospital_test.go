package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	db "care/line/internal/db/sqlc"
	"care/line/internal/dispatch"
)

// forwardFixture creates a customer request and forwards it to hospital 40.
func forwardFixture(t *testing.T) (*Server, *fakeQuerier, AmbulanceRequestResponse) {
	t.Helper()
	fq := newFakeQuerier()
	fq.addAccount(db.Account{ID: 10, Role: db.AccountRoleCustomer, FullName: "Asha"})
	fq.addAccount(hospitalAccount(40, "City Care Hospital", "Karnataka"))
	s := newTestServer(fq, nil)

	rec := httptest.NewRecorder()
	s.handleCreateRequest(rec, newRequest(t, http.MethodPost, "/api/ambulance", createPayload(), claimsWithRole(10, dispatch.RoleCustomer), nil))
	created := decodeBody[AmbulanceRequestResponse](t, rec)

	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 40}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("forward failed: %d %s", rec.Code, rec.Body.String())
	}
	return s, fq, decodeBody[AmbulanceRequestResponse](t, rec)
}

func TestForwardToHospital(t *testing.T) {
	_, fq, forwarded := forwardFixture(t)

	if forwarded.Status != "forwarded_to_hospital" {
		t.Errorf("expected forwarded_to_hospital, got %q", forwarded.Status)
	}
	if forwarded.HospitalResponse != "pending" {
		t.Errorf("expected hospital_response pending, got %q", forwarded.HospitalResponse)
	}
	if forwarded.ForwardedToHospitalID == nil || *forwarded.ForwardedToHospitalID != 40 {
		t.Errorf("expected hospital 40, got %v", forwarded.ForwardedToHospitalID)
	}
	if forwarded.IsRead {
		t.Error("forwarding must reset the read marker")
	}

	// Exactly one notification to the hospital and one to the customer.
	if got := len(fq.notificationsFor(40)); got != 1 {
		t.Errorf("expected 1 hospital notification, got %d", got)
	}
	if got := len(fq.notificationsFor(10)); got != 1 {
		t.Errorf("expected 1 customer notification, got %d", got)
	}
}

func TestForwardRepeatReNotifies(t *testing.T) {
	s, fq, forwarded := forwardFixture(t)

	rec := httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 40}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("re-forward failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := len(fq.notificationsFor(40)); got != 2 {
		t.Errorf("expected the hospital to be notified again, got %d notifications", got)
	}
}

func TestForwardValidation(t *testing.T) {
	fq := newFakeQuerier()
	fq.addAccount(db.Account{ID: 10, Role: db.AccountRoleCustomer, FullName: "Asha"})
	fq.addAccount(db.Account{ID: 20, Role: db.AccountRoleStaff, FullName: "Ravi"})
	s := newTestServer(fq, nil)

	rec := httptest.NewRecorder()
	s.handleCreateRequest(rec, newRequest(t, http.MethodPost, "/api/ambulance", createPayload(), claimsWithRole(10, dispatch.RoleCustomer), nil))
	created := decodeBody[AmbulanceRequestResponse](t, rec)

	// Unknown hospital account.
	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 99}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown hospital, got %d", rec.Code)
	}

	// An account that is not a hospital reads as missing too.
	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 20}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a non-hospital account, got %d", rec.Code)
	}

	// Missing request.
	fq.addAccount(hospitalAccount(40, "City Care Hospital", "Karnataka"))
	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 40}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(777)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing request, got %d", rec.Code)
	}

	// Terminal request cannot be forwarded.
	rec = httptest.NewRecorder()
	s.handleUpdateStatus(rec, newRequest(t, http.MethodPut, "/status",
		UpdateRequestStatusRequest{Status: "cancelled"}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 40}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for a cancelled request, got %d", rec.Code)
	}
}

func TestForwardLosesRaceWithCancellation(t *testing.T) {
	fq := newFakeQuerier()
	fq.addAccount(db.Account{ID: 10, Role: db.AccountRoleCustomer, FullName: "Asha"})
	fq.addAccount(hospitalAccount(40, "City Care Hospital", "Karnataka"))
	s := newTestServer(fq, nil)

	rec := httptest.NewRecorder()
	s.handleCreateRequest(rec, newRequest(t, http.MethodPost, "/api/ambulance", createPayload(), claimsWithRole(10, dispatch.RoleCustomer), nil))
	created := decodeBody[AmbulanceRequestResponse](t, rec)
	pending, err := fq.GetAmbulanceRequest(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}

	// The customer cancels while the forward handler still holds the
	// pending snapshot from its read.
	rec = httptest.NewRecorder()
	s.handleUpdateStatus(rec, newRequest(t, http.MethodPut, "/status",
		UpdateRequestStatusRequest{Status: "cancelled"}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for the cancellation, got %d: %s", rec.Code, rec.Body.String())
	}
	cancelNotes := len(fq.notificationsFor(10))

	stale := newTestServer(&staleReadQuerier{fakeQuerier: fq, snapshot: pending}, nil)
	rec = httptest.NewRecorder()
	stale.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 40}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(created.ID)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 when the forward races a cancellation, got %d: %s", rec.Code, rec.Body.String())
	}

	cur, err := fq.GetAmbulanceRequest(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cur.Status != db.RequestStatusCancelled {
		t.Errorf("cancelled request was overwritten, now %q", cur.Status)
	}
	if got := len(fq.notificationsFor(40)); got != 0 {
		t.Errorf("expected no hospital notification for a failed forward, got %d", got)
	}
	if got := len(fq.notificationsFor(10)); got != cancelNotes {
		t.Errorf("expected no new customer notification for a failed forward, got %d", got-cancelNotes)
	}
}

func TestHospitalResponseReject(t *testing.T) {
	s, fq, forwarded := forwardFixture(t)
	fq.addAccount(systemAdmin(1))

	rec := httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "rejected", Notes: strPtr("no ICU beds")},
		claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[AmbulanceRequestResponse](t, rec)
	if resp.Status != "hospital_rejected" || resp.HospitalResponse != "rejected" {
		t.Errorf("unexpected state: %q / %q", resp.Status, resp.HospitalResponse)
	}
	if resp.HospitalResponseNotes != "no ICU beds" {
		t.Errorf("expected notes, got %q", resp.HospitalResponseNotes)
	}
	if resp.HospitalResponseDate == nil {
		t.Error("expected a response date")
	}

	// Customer heard about forward + decision, admin about the decision.
	if got := len(fq.notificationsFor(10)); got != 2 {
		t.Errorf("expected 2 customer notifications, got %d", got)
	}
	if got := len(fq.notificationsFor(1)); got != 1 {
		t.Errorf("expected 1 admin notification, got %d", got)
	}

	// A second decision is rejected.
	rec = httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "accepted"}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for a second decision, got %d", rec.Code)
	}
}

func TestHospitalResponseWrongHospital(t *testing.T) {
	s, _, forwarded := forwardFixture(t)

	rec := httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "accepted"}, claimsWithRole(41, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for the wrong hospital, got %d", rec.Code)
	}
}

func TestReforwardAfterRejection(t *testing.T) {
	s, fq, forwarded := forwardFixture(t)
	fq.addAccount(hospitalAccount(41, "Lakeside Hospital", "Karnataka"))

	rec := httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "rejected"}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))

	rec = httptest.NewRecorder()
	s.handleForwardToHospital(rec, newRequest(t, http.MethodPost, "/forward",
		ForwardRequestRequest{HospitalID: 41}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("re-forward after rejection failed: %d %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[AmbulanceRequestResponse](t, rec)
	if resp.HospitalResponse != "pending" || resp.HospitalResponseNotes != "" {
		t.Errorf("expected a clean decision slate, got %q / %q", resp.HospitalResponse, resp.HospitalResponseNotes)
	}

	// The new hospital may now decide.
	rec = httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "accepted"}, claimsWithRole(41, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected the new hospital to decide, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeBody[AmbulanceRequestResponse](t, rec); resp.Status != "hospital_accepted" {
		t.Errorf("expected hospital_accepted, got %q", resp.Status)
	}
}

func registerAmbulance(t *testing.T, s *Server, hospitalID int64, vehicle string) FleetAmbulanceResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	s.handleCreateFleetAmbulance(rec, newRequest(t, http.MethodPost, "/api/hospital/ambulances",
		CreateFleetAmbulanceRequest{VehicleNumber: vehicle, DriverName: strPtr("Kumar"), DriverContact: strPtr("+91-9111111111")},
		claimsWithRole(hospitalID, dispatch.RoleHospital), nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("fleet registration failed: %d %s", rec.Code, rec.Body.String())
	}
	return decodeBody[FleetAmbulanceResponse](t, rec)
}

func TestAssignAmbulance(t *testing.T) {
	s, fq, forwarded := forwardFixture(t)
	amb := registerAmbulance(t, s, 40, "KA-01-AB-1234")

	rec := httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: amb.ID}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[AmbulanceRequestResponse](t, rec)
	if resp.Status != "hospital_accepted" {
		t.Errorf("expected hospital_accepted, got %q", resp.Status)
	}
	if resp.HospitalResponse != "accepted" {
		t.Errorf("assigning an ambulance must record acceptance, got %q", resp.HospitalResponse)
	}
	if resp.AssignedAmbulanceID == nil || *resp.AssignedAmbulanceID != amb.ID {
		t.Errorf("expected ambulance %d on the request, got %v", amb.ID, resp.AssignedAmbulanceID)
	}

	vehicle, err := fq.GetHospitalAmbulance(context.Background(), amb.ID)
	if err != nil {
		t.Fatalf("fetching ambulance: %v", err)
	}
	if vehicle.Status != db.AmbulanceStatusAssigned || vehicle.AssignedRequestID == nil {
		t.Errorf("expected the vehicle to be booked, got %+v", vehicle)
	}

	// Completing the request releases the vehicle.
	rec = httptest.NewRecorder()
	s.handleUpdateStatus(rec, newRequest(t, http.MethodPut, "/status",
		UpdateRequestStatusRequest{Status: "completed"}, claimsWithRole(30, dispatch.RoleAdmin), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("completion failed: %d %s", rec.Code, rec.Body.String())
	}
	vehicle, _ = fq.GetHospitalAmbulance(context.Background(), amb.ID)
	if vehicle.Status != db.AmbulanceStatusAvailable || vehicle.AssignedRequestID != nil {
		t.Errorf("expected the vehicle released after completion, got %+v", vehicle)
	}
}

func TestAssignAmbulanceKeepsRecordedRejection(t *testing.T) {
	s, _, forwarded := forwardFixture(t)
	amb := registerAmbulance(t, s, 40, "KA-01-AB-1234")

	rec := httptest.NewRecorder()
	s.handleHospitalResponse(rec, newRequest(t, http.MethodPost, "/hospital-response",
		HospitalResponseRequest{Response: "rejected", Notes: strPtr("no ICU beds")},
		claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("rejection failed: %d %s", rec.Code, rec.Body.String())
	}

	// Assigning a vehicle after a recorded rejection still books it, but
	// must not rewrite the decision to accepted.
	rec = httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: amb.ID}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[AmbulanceRequestResponse](t, rec)
	if resp.Status != "hospital_accepted" {
		t.Errorf("expected hospital_accepted, got %q", resp.Status)
	}
	if resp.HospitalResponse != "rejected" {
		t.Errorf("recorded rejection must survive, got %q", resp.HospitalResponse)
	}
	if resp.HospitalResponseNotes != "no ICU beds" {
		t.Errorf("rejection notes must survive, got %q", resp.HospitalResponseNotes)
	}
}

func TestAssignAmbulanceConflicts(t *testing.T) {
	s, fq, forwarded := forwardFixture(t)
	fq.addAccount(hospitalAccount(41, "Lakeside Hospital", "Karnataka"))
	amb := registerAmbulance(t, s, 40, "KA-01-AB-1234")
	other := registerAmbulance(t, s, 41, "KA-02-CD-5678")

	rec := httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: amb.ID}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("first assignment failed: %d", rec.Code)
	}

	// The same vehicle cannot be booked twice.
	rec = httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: amb.ID}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for a booked vehicle, got %d", rec.Code)
	}

	// Another hospital's vehicle reads as missing.
	rec = httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: other.ID}, claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a foreign vehicle, got %d", rec.Code)
	}

	// A request not forwarded to the caller fails and releases the booking.
	amb2 := registerAmbulance(t, s, 41, "KA-02-EF-9012")
	rec = httptest.NewRecorder()
	s.handleAssignAmbulance(rec, newRequest(t, http.MethodPost, "/assign-ambulance",
		AssignAmbulanceRequest{AmbulanceID: amb2.ID}, claimsWithRole(41, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a request forwarded elsewhere, got %d", rec.Code)
	}
	vehicle, _ := fq.GetHospitalAmbulance(context.Background(), amb2.ID)
	if vehicle.Status != db.AmbulanceStatusAvailable {
		t.Errorf("expected the failed booking rolled back, got status %q", vehicle.Status)
	}
}

func TestFleetManagement(t *testing.T) {
	fq := newFakeQuerier()
	fq.addAccount(hospitalAccount(40, "City Care Hospital", "Karnataka"))
	s := newTestServer(fq, nil)

	amb := registerAmbulance(t, s, 40, "KA-01-AB-1234")
	registerAmbulance(t, s, 40, "KA-01-AB-5678")

	// Duplicate vehicle number.
	rec := httptest.NewRecorder()
	s.handleCreateFleetAmbulance(rec, newRequest(t, http.MethodPost, "/api/hospital/ambulances",
		CreateFleetAmbulanceRequest{VehicleNumber: "KA-01-AB-1234"}, claimsWithRole(40, dispatch.RoleHospital), nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate vehicle number, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.handleListFleet(rec, newRequest(t, http.MethodGet, "/api/hospital/ambulances", nil, claimsWithRole(40, dispatch.RoleHospital), nil))
	if fleet := decodeBody[[]FleetAmbulanceResponse](t, rec); len(fleet) != 2 {
		t.Errorf("expected 2 vehicles, got %d", len(fleet))
	}

	// Another hospital sees an empty fleet.
	rec = httptest.NewRecorder()
	s.handleListFleet(rec, newRequest(t, http.MethodGet, "/api/hospital/ambulances", nil, claimsWithRole(41, dispatch.RoleHospital), nil))
	if fleet := decodeBody[[]FleetAmbulanceResponse](t, rec); len(fleet) != 0 {
		t.Errorf("expected no vehicles for another hospital, got %d", len(fleet))
	}

	rec = httptest.NewRecorder()
	s.handleUpdateFleetStatus(rec, newRequest(t, http.MethodPatch, "/status",
		UpdateFleetStatusRequest{Status: "maintenance"}, claimsWithRole(40, dispatch.RoleHospital),
		map[string]string{"ambulanceID": "1"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeBody[FleetAmbulanceResponse](t, rec); resp.Status != "maintenance" {
		t.Errorf("expected maintenance, got %q", resp.Status)
	}

	// Foreign vehicle reads as missing.
	rec = httptest.NewRecorder()
	s.handleUpdateFleetStatus(rec, newRequest(t, http.MethodPatch, "/status",
		UpdateFleetStatusRequest{Status: "available"}, claimsWithRole(41, dispatch.RoleHospital),
		map[string]string{"ambulanceID": "1"}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a foreign vehicle, got %d", rec.Code)
	}
	_ = amb
}

func TestListHospitalsByState(t *testing.T) {
	fq := newFakeQuerier()
	fq.addAccount(hospitalAccount(40, "City Care Hospital", "Karnataka"))
	fq.addAccount(hospitalAccount(41, "Lakeside Hospital", "Karnataka"))
	fq.addAccount(hospitalAccount(42, "Marine Drive Clinic", "Maharashtra"))
	s := newTestServer(fq, nil)

	rec := httptest.NewRecorder()
	s.handleListHospitalsByState(rec, newRequest(t, http.MethodGet, "/api/hospitals/by-state/Karnataka", nil,
		claimsWithRole(30, dispatch.RoleAdmin), map[string]string{"state": "Karnataka"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	hospitals := decodeBody[[]HospitalSummaryResponse](t, rec)
	if len(hospitals) != 2 {
		t.Errorf("expected 2 Karnataka hospitals, got %d", len(hospitals))
	}
	for _, h := range hospitals {
		if h.State != "Karnataka" {
			t.Errorf("unexpected state %q", h.State)
		}
	}
}

func TestMarkRequestRead(t *testing.T) {
	s, _, forwarded := forwardFixture(t)

	rec := httptest.NewRecorder()
	s.handleMarkRequestRead(rec, newRequest(t, http.MethodPost, "/mark-read", nil,
		claimsWithRole(40, dispatch.RoleHospital), requestIDParam(forwarded.ID)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.handleMarkRequestRead(rec, newRequest(t, http.MethodPost, "/mark-read", nil,
		claimsWithRole(40, dispatch.RoleHospital), requestIDParam(999)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing request, got %d", rec.Code)
	}
}

func TestNotificationFailureDoesNotFailOperation(t *testing.T) {
	fq := newFakeQuerier()
	fq.addAccount(systemAdmin(1))
	fq.failNotifications = true
	s := newTestServer(fq, nil)

	rec := httptest.NewRecorder()
	s.handleCreateRequest(rec, newRequest(t, http.MethodPost, "/api/ambulance", createPayload(), claimsWithRole(10, dispatch.RoleCustomer), nil))
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 despite notification failure, got %d", rec.Code)
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"care/line/internal/config"
	db "care/line/internal/db/sqlc"
	"care/line/internal/geo"
)

// fakeQuerier is an in-memory db.Querier that mirrors the conditional-update
// semantics of the real queries, so handler tests exercise the same
// won/lost-the-write branches the database would produce.
type fakeQuerier struct {
	mu            sync.Mutex
	nextID        int64
	requests      map[int64]*db.AmbulanceRequest
	ambulances    map[int64]*db.HospitalAmbulance
	accounts      map[int64]db.Account
	notifications []db.Notification

	failNotifications bool
}

var _ db.Querier = (*fakeQuerier)(nil)

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		requests:   make(map[int64]*db.AmbulanceRequest),
		ambulances: make(map[int64]*db.HospitalAmbulance),
		accounts:   make(map[int64]db.Account),
	}
}

func (f *fakeQuerier) id() int64 {
	f.nextID++
	return f.nextID
}

func now() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
}

func (f *fakeQuerier) addAccount(a db.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[a.ID] = a
}

func (f *fakeQuerier) CreateAmbulanceRequest(_ context.Context, arg db.CreateAmbulanceRequestParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := uuid.New()
	req := &db.AmbulanceRequest{
		ID:                 f.id(),
		Reference:          pgtype.UUID{Bytes: ref, Valid: true},
		CustomerID:         arg.CustomerID,
		PickupAddress:      arg.PickupAddress,
		DestinationAddress: arg.DestinationAddress,
		EmergencyType:      arg.EmergencyType,
		ContactNumber:      arg.ContactNumber,
		Priority:           arg.Priority,
		CustomerCondition:  arg.CustomerCondition,
		CustomerState:      arg.CustomerState,
		CustomerDistrict:   arg.CustomerDistrict,
		Status:             db.RequestStatusPending,
		CreatedAt:          now(),
		UpdatedAt:          now(),
	}
	f.requests[req.ID] = req
	return *req, nil
}

func (f *fakeQuerier) GetAmbulanceRequest(_ context.Context, id int64) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	return *req, nil
}

func (f *fakeQuerier) ListAmbulanceRequests(_ context.Context, arg db.ListAmbulanceRequestsParams) ([]db.ListAmbulanceRequestsRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db.ListAmbulanceRequestsRow
	for _, req := range f.requests {
		rows = append(rows, db.ListAmbulanceRequestsRow{
			ID:                    req.ID,
			Reference:             req.Reference,
			CustomerID:            req.CustomerID,
			PickupAddress:         req.PickupAddress,
			DestinationAddress:    req.DestinationAddress,
			EmergencyType:         req.EmergencyType,
			ContactNumber:         req.ContactNumber,
			Priority:              req.Priority,
			CustomerCondition:     req.CustomerCondition,
			AssignedStaffID:       req.AssignedStaffID,
			AssignedAmbulanceID:   req.AssignedAmbulanceID,
			ForwardedToHospitalID: req.ForwardedToHospitalID,
			HospitalResponse:      req.HospitalResponse,
			HospitalResponseNotes: req.HospitalResponseNotes,
			HospitalResponseDate:  req.HospitalResponseDate,
			CustomerState:         req.CustomerState,
			CustomerDistrict:      req.CustomerDistrict,
			Status:                req.Status,
			StatusNotes:           req.StatusNotes,
			IsRead:                req.IsRead,
			CreatedAt:             req.CreatedAt,
			UpdatedAt:             req.UpdatedAt,
			CustomerName:          f.accounts[req.CustomerID].FullName,
		})
	}
	return rows, nil
}

func (f *fakeQuerier) ListAmbulanceRequestsByCustomer(_ context.Context, arg db.ListAmbulanceRequestsByCustomerParams) ([]db.ListAmbulanceRequestsByCustomerRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db.ListAmbulanceRequestsByCustomerRow
	for _, req := range f.requests {
		if req.CustomerID != arg.CustomerID {
			continue
		}
		rows = append(rows, db.ListAmbulanceRequestsByCustomerRow{
			ID:                    req.ID,
			Reference:             req.Reference,
			CustomerID:            req.CustomerID,
			PickupAddress:         req.PickupAddress,
			DestinationAddress:    req.DestinationAddress,
			EmergencyType:         req.EmergencyType,
			ContactNumber:         req.ContactNumber,
			Priority:              req.Priority,
			CustomerCondition:     req.CustomerCondition,
			AssignedStaffID:       req.AssignedStaffID,
			AssignedAmbulanceID:   req.AssignedAmbulanceID,
			ForwardedToHospitalID: req.ForwardedToHospitalID,
			HospitalResponse:      req.HospitalResponse,
			HospitalResponseNotes: req.HospitalResponseNotes,
			HospitalResponseDate:  req.HospitalResponseDate,
			CustomerState:         req.CustomerState,
			CustomerDistrict:      req.CustomerDistrict,
			Status:                req.Status,
			StatusNotes:           req.StatusNotes,
			IsRead:                req.IsRead,
			CreatedAt:             req.CreatedAt,
			UpdatedAt:             req.UpdatedAt,
			CustomerName:          f.accounts[req.CustomerID].FullName,
		})
	}
	return rows, nil
}

func (f *fakeQuerier) ListPendingAmbulanceRequests(_ context.Context, arg db.ListPendingAmbulanceRequestsParams) ([]db.ListPendingAmbulanceRequestsRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db.ListPendingAmbulanceRequestsRow
	for _, req := range f.requests {
		if req.Status != db.RequestStatusPending {
			continue
		}
		rows = append(rows, db.ListPendingAmbulanceRequestsRow{
			ID:            req.ID,
			Reference:     req.Reference,
			CustomerID:    req.CustomerID,
			PickupAddress: req.PickupAddress,
			DestinationAddress: req.DestinationAddress,
			EmergencyType: req.EmergencyType,
			ContactNumber: req.ContactNumber,
			Priority:      req.Priority,
			CustomerCondition: req.CustomerCondition,
			CustomerState: req.CustomerState,
			CustomerDistrict: req.CustomerDistrict,
			Status:        req.Status,
			IsRead:        req.IsRead,
			CreatedAt:     req.CreatedAt,
			UpdatedAt:     req.UpdatedAt,
			CustomerName:  f.accounts[req.CustomerID].FullName,
		})
	}
	return rows, nil
}

func (f *fakeQuerier) SelfAssignAmbulanceRequest(_ context.Context, arg db.SelfAssignAmbulanceRequestParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[arg.ID]
	if !ok || req.Status != db.RequestStatusPending || req.AssignedStaffID != nil {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	req.AssignedStaffID = arg.AssignedStaffID
	req.Status = db.RequestStatusAssigned
	req.UpdatedAt = now()
	return *req, nil
}

func statusIn(status db.RequestStatus, allowed []db.RequestStatus) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeQuerier) UpdateAmbulanceRequestStatus(_ context.Context, arg db.UpdateAmbulanceRequestStatusParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[arg.ID]
	if !ok || !statusIn(req.Status, arg.AllowedFrom) {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	req.Status = arg.Status
	if arg.StatusNotes != nil {
		req.StatusNotes = arg.StatusNotes
	}
	req.UpdatedAt = now()
	return *req, nil
}

func (f *fakeQuerier) ForwardAmbulanceRequest(_ context.Context, arg db.ForwardAmbulanceRequestParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[arg.ID]
	if !ok || !statusIn(req.Status, arg.AllowedFrom) {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	req.ForwardedToHospitalID = arg.ForwardedToHospitalID
	req.HospitalResponse = db.NullHospitalResponse{HospitalResponse: db.HospitalResponsePending, Valid: true}
	req.HospitalResponseNotes = nil
	req.HospitalResponseDate = pgtype.Timestamptz{}
	req.Status = db.RequestStatusForwardedToHospital
	req.IsRead = false
	req.UpdatedAt = now()
	return *req, nil
}

func (f *fakeQuerier) SetHospitalResponse(_ context.Context, arg db.SetHospitalResponseParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[arg.ID]
	if !ok ||
		req.ForwardedToHospitalID == nil || arg.ForwardedToHospitalID == nil ||
		*req.ForwardedToHospitalID != *arg.ForwardedToHospitalID ||
		!req.HospitalResponse.Valid || req.HospitalResponse.HospitalResponse != db.HospitalResponsePending {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	req.HospitalResponse = arg.HospitalResponse
	req.HospitalResponseNotes = arg.HospitalResponseNotes
	req.HospitalResponseDate = now()
	req.Status = arg.Status
	req.UpdatedAt = now()
	return *req, nil
}

func (f *fakeQuerier) AssignAmbulanceToRequest(_ context.Context, arg db.AssignAmbulanceToRequestParams) (db.AmbulanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[arg.ID]
	if !ok ||
		req.ForwardedToHospitalID == nil || arg.ForwardedToHospitalID == nil ||
		*req.ForwardedToHospitalID != *arg.ForwardedToHospitalID {
		return db.AmbulanceRequest{}, pgx.ErrNoRows
	}
	req.AssignedAmbulanceID = arg.AssignedAmbulanceID
	req.Status = db.RequestStatusHospitalAccepted
	if req.HospitalResponse.Valid && req.HospitalResponse.HospitalResponse == db.HospitalResponsePending {
		req.HospitalResponse = db.NullHospitalResponse{HospitalResponse: db.HospitalResponseAccepted, Valid: true}
	}
	req.UpdatedAt = now()
	return *req, nil
}

func (f *fakeQuerier) MarkAmbulanceRequestRead(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return 0, nil
	}
	req.IsRead = true
	return 1, nil
}

func (f *fakeQuerier) CountAmbulanceRequestsByStatus(_ context.Context) ([]db.CountAmbulanceRequestsByStatusRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[db.RequestStatus]int64)
	for _, req := range f.requests {
		counts[req.Status]++
	}
	var rows []db.CountAmbulanceRequestsByStatusRow
	for status, count := range counts {
		rows = append(rows, db.CountAmbulanceRequestsByStatusRow{Status: status, Count: count})
	}
	return rows, nil
}

func (f *fakeQuerier) GetAccount(_ context.Context, id int64) (db.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return db.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (f *fakeQuerier) ListSystemAdmins(_ context.Context) ([]db.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Account
	for _, a := range f.accounts {
		if a.Role == db.AccountRoleAdmin && a.AdminLevel.Valid && a.AdminLevel.AdminLevel == db.AdminLevelSystem {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeQuerier) ListStateAdmins(_ context.Context, state *string) ([]db.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Account
	for _, a := range f.accounts {
		if a.Role == db.AccountRoleAdmin && a.AdminLevel.Valid && a.AdminLevel.AdminLevel == db.AdminLevelState &&
			a.State != nil && state != nil && *a.State == *state {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeQuerier) ListHospitalsByState(_ context.Context, state *string) ([]db.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Account
	for _, a := range f.accounts {
		if a.Role == db.AccountRoleHospital && a.State != nil && state != nil && *a.State == *state {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeQuerier) CreateNotification(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNotifications {
		return db.Notification{}, errors.New("notifications table unavailable")
	}
	n := db.Notification{
		ID:        f.id(),
		UserID:    arg.UserID,
		Type:      arg.Type,
		Title:     arg.Title,
		Message:   arg.Message,
		RelatedID: arg.RelatedID,
		CreatedAt: now(),
	}
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeQuerier) ListNotificationsByUser(_ context.Context, arg db.ListNotificationsByUserParams) ([]db.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Notification
	for _, n := range f.notifications {
		if n.UserID == arg.UserID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeQuerier) CountUnreadNotifications(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuerier) MarkNotificationRead(_ context.Context, arg db.MarkNotificationReadParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		if f.notifications[i].ID == arg.ID && f.notifications[i].UserID == arg.UserID {
			f.notifications[i].IsRead = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeQuerier) MarkAllNotificationsRead(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		if f.notifications[i].UserID == userID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeQuerier) CreateHospitalAmbulance(_ context.Context, arg db.CreateHospitalAmbulanceParams) (db.HospitalAmbulance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.ambulances {
		if a.HospitalUserID == arg.HospitalUserID && a.VehicleNumber == arg.VehicleNumber {
			return db.HospitalAmbulance{}, errors.New("duplicate key value violates unique constraint")
		}
	}
	a := &db.HospitalAmbulance{
		ID:             f.id(),
		HospitalUserID: arg.HospitalUserID,
		VehicleNumber:  arg.VehicleNumber,
		VehicleModel:   arg.VehicleModel,
		DriverName:     arg.DriverName,
		DriverContact:  arg.DriverContact,
		Status:         db.AmbulanceStatusAvailable,
		CreatedAt:      now(),
		UpdatedAt:      now(),
	}
	f.ambulances[a.ID] = a
	return *a, nil
}

func (f *fakeQuerier) GetHospitalAmbulance(_ context.Context, id int64) (db.HospitalAmbulance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.ambulances[id]
	if !ok {
		return db.HospitalAmbulance{}, pgx.ErrNoRows
	}
	return *a, nil
}

func (f *fakeQuerier) ListHospitalAmbulances(_ context.Context, hospitalUserID int64) ([]db.HospitalAmbulance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.HospitalAmbulance
	for _, a := range f.ambulances {
		if a.HospitalUserID == hospitalUserID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeQuerier) AssignHospitalAmbulance(_ context.Context, arg db.AssignHospitalAmbulanceParams) (db.HospitalAmbulance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.ambulances[arg.ID]
	if !ok || a.HospitalUserID != arg.HospitalUserID || a.Status == db.AmbulanceStatusAssigned {
		return db.HospitalAmbulance{}, pgx.ErrNoRows
	}
	a.Status = db.AmbulanceStatusAssigned
	a.AssignedRequestID = arg.AssignedRequestID
	a.UpdatedAt = now()
	return *a, nil
}

func (f *fakeQuerier) UpdateHospitalAmbulanceStatus(_ context.Context, arg db.UpdateHospitalAmbulanceStatusParams) (db.HospitalAmbulance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.ambulances[arg.ID]
	if !ok || a.HospitalUserID != arg.HospitalUserID {
		return db.HospitalAmbulance{}, pgx.ErrNoRows
	}
	a.Status = arg.Status
	a.AssignedRequestID = nil
	a.UpdatedAt = now()
	return *a, nil
}

func (f *fakeQuerier) ReleaseAmbulanceForRequest(_ context.Context, assignedRequestID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if assignedRequestID == nil {
		return nil
	}
	for _, a := range f.ambulances {
		if a.AssignedRequestID != nil && *a.AssignedRequestID == *assignedRequestID {
			a.Status = db.AmbulanceStatusAvailable
			a.AssignedRequestID = nil
			a.UpdatedAt = now()
		}
	}
	return nil
}

// notificationsFor returns the notifications stored for one user.
func (f *fakeQuerier) notificationsFor(userID int64) []db.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// staleReadQuerier serves reads from a fixed snapshot while writes hit the
// live store, mimicking another writer landing between a handler's read and
// its update.
type staleReadQuerier struct {
	*fakeQuerier
	snapshot db.AmbulanceRequest
}

func (s *staleReadQuerier) GetAmbulanceRequest(context.Context, int64) (db.AmbulanceRequest, error) {
	return s.snapshot, nil
}

// fakeResolver returns a canned region or error.
type fakeResolver struct {
	region geo.Region
	err    error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (geo.Region, error) {
	return f.region, f.err
}

func newTestServer(q db.Querier, regions geo.RegionResolver) *Server {
	if regions == nil {
		regions = &fakeResolver{}
	}
	return &Server{
		cfg:       config.Config{Env: "test"},
		log:       zerolog.Nop(),
		queries:   q,
		validate:  newValidator(),
		regions:   regions,
		startedAt: time.Now(),
	}
}

func claimsWithRole(userID int64, role string) *UserClaims {
	c := &UserClaims{UserID: userID}
	c.RealmAccess.Roles = []string{role}
	return c
}

// newRequest builds an authenticated request with chi URL params wired in.
func newRequest(t *testing.T, method, target string, body any, claims *UserClaims, params map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)

	ctx := req.Context()
	if claims != nil {
		ctx = context.WithValue(ctx, UserContextKey, claims)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func requestIDParam(id int64) map[string]string {
	return map[string]string{"requestID": strconv.FormatInt(id, 10)}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

package server

import "time"

type AmbulanceRequestResponse struct {
	ID                    int64      `json:"id"`
	Reference             string     `json:"reference"`
	CustomerID            int64      `json:"customer_id"`
	CustomerName          string     `json:"customer_name,omitempty"`
	PickupAddress         string     `json:"pickup_address"`
	DestinationAddress    string     `json:"destination_address"`
	EmergencyType         string     `json:"emergency_type"`
	ContactNumber         string     `json:"contact_number"`
	Priority              string     `json:"priority"`
	CustomerCondition     string     `json:"customer_condition,omitempty"`
	AssignedStaffID       *int64     `json:"assigned_staff_id,omitempty"`
	StaffName             string     `json:"staff_name,omitempty"`
	AssignedAmbulanceID   *int64     `json:"assigned_ambulance_id,omitempty"`
	VehicleNumber         string     `json:"vehicle_number,omitempty"`
	DriverName            string     `json:"driver_name,omitempty"`
	DriverContact         string     `json:"driver_contact,omitempty"`
	ForwardedToHospitalID *int64     `json:"forwarded_to_hospital_id,omitempty"`
	HospitalName          string     `json:"hospital_name,omitempty"`
	HospitalResponse      string     `json:"hospital_response,omitempty"`
	HospitalResponseNotes string     `json:"hospital_response_notes,omitempty"`
	HospitalResponseDate  *time.Time `json:"hospital_response_date,omitempty"`
	CustomerState         string     `json:"customer_state,omitempty"`
	CustomerDistrict      string     `json:"customer_district,omitempty"`
	Status                string     `json:"status"`
	StatusNotes           string     `json:"status_notes,omitempty"`
	IsRead                bool       `json:"is_read"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID *int64    `json:"related_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HospitalSummaryResponse struct {
	ID           int64  `json:"id"`
	HospitalName string `json:"hospital_name"`
	State        string `json:"state,omitempty"`
	District     string `json:"district,omitempty"`
}

type FleetAmbulanceResponse struct {
	ID                int64     `json:"id"`
	VehicleNumber     string    `json:"vehicle_number"`
	VehicleModel      string    `json:"vehicle_model,omitempty"`
	DriverName        string    `json:"driver_name,omitempty"`
	DriverContact     string    `json:"driver_contact,omitempty"`
	Status            string    `json:"status"`
	AssignedRequestID *int64    `json:"assigned_request_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SyncResponse struct {
	Requests            []AmbulanceRequestResponse `json:"requests"`
	UnreadNotifications int64                      `json:"unread_notifications"`
	RecentNotifications []NotificationResponse     `json:"recent_notifications"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	Uptime string `json:"uptime"`
}

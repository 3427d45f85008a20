package remote

// Wire shapes for the mirror server. Field names intentionally differ from
// the local model (supervisor_id vs supervisor_device_id, relation_id, a
// status enum without cancelled); translate.go converts at the boundary and
// nothing outside this package touches these types.

// Status is the supervision request status as the server reports it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Device is the server's view of a registered device.
type Device struct {
	DeviceID          string `json:"device_id"`
	DeviceName        string `json:"device_name"`
	IMEI              string `json:"imei,omitempty"`
	Mode              string `json:"mode"`
	CreatedAt         string `json:"created_at"`
	LastSeenAt        string `json:"last_seen_at"`
	LastNameUpdatedAt string `json:"last_name_updated_at,omitempty"`
}

// DeviceStatus is the server-side status row for a device.
type DeviceStatus struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
	Mode       string `json:"mode"`
	LastSignin string `json:"last_signin,omitempty"`
	Streak     int    `json:"streak"`
}

// Request is a supervision request on the server.
type Request struct {
	RequestID      string `json:"request_id"`
	SupervisorID   string `json:"supervisor_id"`
	SupervisorName string `json:"supervisor_name,omitempty"`
	TargetID       string `json:"target_id"`
	TargetName     string `json:"target_name,omitempty"`
	Status         Status `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// Relation is a supervision relationship on the server.
type Relation struct {
	RelationID     string `json:"relation_id"`
	SupervisorID   string `json:"supervisor_id"`
	SupervisorName string `json:"supervisor_name,omitempty"`
	TargetID       string `json:"target_id"`
	TargetName     string `json:"target_name,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// SigninResponse is returned by the device sign-in endpoint.
type SigninResponse struct {
	Streak int `json:"streak"`
}

package remote

import (
	"time"

	"github.com/areuok/areuok/internal/models"
)

// parseTime decodes the server's RFC3339 timestamps, returning the zero
// time for missing or malformed values.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LocalStatus maps a server status onto the local request status. The
// server enum has no cancelled value; cancelled requests exist only in the
// local ledger.
func LocalStatus(s Status) models.RequestStatus {
	switch s {
	case StatusAccepted:
		return models.RequestAccepted
	case StatusRejected:
		return models.RequestRejected
	default:
		return models.RequestPending
	}
}

// LocalRequest converts a server request into the canonical local shape.
func LocalRequest(r Request) models.SupervisionRequest {
	return models.SupervisionRequest{
		RequestID:            r.RequestID,
		SupervisorDeviceID:   r.SupervisorID,
		SupervisorDeviceName: r.SupervisorName,
		TargetDeviceID:       r.TargetID,
		Status:               LocalStatus(r.Status),
		CreatedAt:            parseTime(r.CreatedAt),
	}
}

// LocalRequests converts a slice of server requests.
func LocalRequests(rs []Request) []models.SupervisionRequest {
	out := make([]models.SupervisionRequest, len(rs))
	for i, r := range rs {
		out[i] = LocalRequest(r)
	}
	return out
}

// LocalRelationship converts a server relation into the canonical local
// shape. The server keeps a single created_at; locally it seeds both
// established_at and last_sync_at.
func LocalRelationship(r Relation) models.SupervisionRelationship {
	created := parseTime(r.CreatedAt)
	return models.SupervisionRelationship{
		RelationshipID:       r.RelationID,
		SupervisorDeviceID:   r.SupervisorID,
		SupervisorDeviceName: r.SupervisorName,
		SupervisedDeviceID:   r.TargetID,
		SupervisedDeviceName: r.TargetName,
		EstablishedAt:        created,
		LastSyncAt:           created,
	}
}

// LocalRelationships converts a slice of server relations.
func LocalRelationships(rs []Relation) []models.SupervisionRelationship {
	out := make([]models.SupervisionRelationship, len(rs))
	for i, r := range rs {
		out[i] = LocalRelationship(r)
	}
	return out
}

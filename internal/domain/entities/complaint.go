package entities

import (
	"strings"
	"time"
)

// ComplaintStatus represents the triage lifecycle of a complaint.
//
// Domain notes:
//   - Status is only mutated by an explicit admin action via the status
//     update endpoint. There is no transition ordering guard: an admin may
//     move a complaint back to Pending after completing it.

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusCompleted  ComplaintStatus = "Completed"
)

// ParseComplaintStatus validates an incoming status value against the known
// lifecycle stages.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch ComplaintStatus(strings.TrimSpace(s)) {
	case ComplaintStatusPending:
		return ComplaintStatusPending, true
	case ComplaintStatusInProgress:
		return ComplaintStatusInProgress, true
	case ComplaintStatusCompleted:
		return ComplaintStatusCompleted, true
	default:
		return "", false
	}
}

// Risk levels carried by a complaint. The classifier maps its predicted
// class to the same scale (1 = low, 3 = high).
const (
	RiskLevelMin     = 1
	RiskLevelMax     = 3
	RiskLevelDefault = 1
)

// DefaultGroup is a legacy display-bucket tag kept for older dashboard
// revisions. Newer dashboards bucket complaints by Status instead.
const DefaultGroup = "group1"

// Complaint is the citizen-submitted report persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - ID and CreatedAt never change after creation.
//   - Risk is always within [RiskLevelMin, RiskLevelMax].
//   - PhotoPath, when set, references a file the photo store wrote.
//   - Complaints are never deleted.

type Complaint struct {
	ID          string          `json:"id"`
	Group       string          `json:"group"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Lat         *float64        `json:"lat,omitempty"`
	Lon         *float64        `json:"lon,omitempty"`
	Risk        int             `json:"risk"`
	PhotoPath   string          `json:"photo,omitempty"`
	Status      ComplaintStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HasLocation reports whether the submitter provided coordinates.
func (c Complaint) HasLocation() bool {
	return c.Lat != nil && c.Lon != nil
}

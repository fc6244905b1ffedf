//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// Status is the application status a user tracks for a job.
//
//	Not Applied ──► Applied ──► Selected
//	                   │
//	                   └──────► Rejected
//
// Any status may be set from any other; the graph shows the usual path only.
type Status string

// Application statuses
const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

// AllStatuses lists every status in display order
var AllStatuses = []Status{StatusNotApplied, StatusApplied, StatusRejected, StatusSelected}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// MaxStatusHistory is the number of status changes kept in history
const MaxStatusHistory = 10

// StatusChange records one status update for the recent-updates feed
type StatusChange struct {
	JobID     int       `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

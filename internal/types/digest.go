//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// DigestDateLayout is the calendar-date layout used for digest keys
const DigestDateLayout = "2006-01-02"

// MaxDigestJobs is the number of jobs a digest keeps
const MaxDigestJobs = 10

// Digest is the ranked shortlist of top-matching jobs for one calendar day
type Digest struct {
	Date        string      `json:"date"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Jobs        []ScoredJob `json:"jobs"`
}

// Empty reports whether no job met the threshold when the digest was generated.
func (d Digest) Empty() bool {
	return len(d.Jobs) == 0
}

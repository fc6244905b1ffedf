//nolint:revive // types is a standard Go package name pattern
package types

// ATSScore is the readiness score of a resume plus improvement suggestions
type ATSScore struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
	Policy      string   `json:"policy"`
}

// Top returns at most n suggestions, keeping evaluation order.
func (s ATSScore) Top(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(s.Suggestions) <= n {
		return s.Suggestions
	}
	return s.Suggestions[:n]
}

// GuidanceKind classifies inline field guidance
type GuidanceKind string

// Guidance kinds
const (
	GuidanceWarning    GuidanceKind = "warning"
	GuidanceSuggestion GuidanceKind = "suggestion"
)

// Guidance is advisory feedback on a single free-text field
type Guidance struct {
	Type    GuidanceKind `json:"type"`
	Message string       `json:"message"`
}

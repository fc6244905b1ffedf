package filtering

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/jonathan/jobfit/internal/types"
)

// SortKey selects the dashboard ordering
type SortKey string

// Supported sort keys
const (
	SortLatest SortKey = "latest"
	SortOldest SortKey = "oldest"
	SortMatch  SortKey = "match"
	SortSalary SortKey = "salary"
)

// ParseSortKey validates a raw sort key. An empty string means "keep catalog order".
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortLatest, SortOldest, SortMatch, SortSalary:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortKeys returns the sort keys offered for a profile. Match ordering
// only makes sense once some preference is set.
func SortKeys(prefs types.PreferenceProfile) []SortKey {
	if prefs.HasPreferences() {
		return []SortKey{SortLatest, SortOldest, SortMatch, SortSalary}
	}
	return []SortKey{SortLatest, SortOldest, SortSalary}
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractSalary returns the largest bare integer in a salary text, or 0.
// "₹6-10 LPA" gives 10 and "₹30k-50k/month" gives 50. Units and currencies are
// ignored, so values from different formats do not compare meaningfully.
func ExtractSalary(text string) int {
	best := 0
	for _, m := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		best = max(best, n)
	}
	return best
}

// Sort orders jobs in place. Unknown or empty keys leave the order untouched.
func Sort(jobs []types.ScoredJob, key SortKey) {
	var cmp func(a, b types.ScoredJob) int
	switch key {
	case SortLatest:
		cmp = func(a, b types.ScoredJob) int { return a.PostedDaysAgo - b.PostedDaysAgo }
	case SortOldest:
		cmp = func(a, b types.ScoredJob) int { return b.PostedDaysAgo - a.PostedDaysAgo }
	case SortMatch:
		cmp = func(a, b types.ScoredJob) int { return b.MatchScore - a.MatchScore }
	case SortSalary:
		cmp = func(a, b types.ScoredJob) int { return ExtractSalary(b.SalaryRange) - ExtractSalary(a.SalaryRange) }
	default:
		return
	}
	slices.SortStableFunc(jobs, cmp)
}

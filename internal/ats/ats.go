// Package ats scores resume readiness for automated screening and gives
// inline writing guidance.
package ats

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/types"
)

// Policy names a versioned ATS rule set
type Policy string

// Available policies
const (
	// PolicyV2 is the canonical rule set used by default.
	PolicyV2 Policy = "v2"
	// PolicyV1 is the legacy rule set. It is only used when selected explicitly.
	PolicyV1 Policy = "v1"
)

// MaxSuggestions is the number of suggestions shown alongside a v2 score.
const MaxSuggestions = 5

// ParsePolicy resolves a policy name. An empty name selects the canonical policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyV2:
		return PolicyV2, nil
	case PolicyV1:
		return PolicyV1, nil
	}
	return "", fmt.Errorf("unknown ats policy %q", s)
}

// rule is one scoring check with the points it awards and the suggestion
// reported when it does not pass.
type rule struct {
	points     int
	suggestion string
	pass       func(r types.Resume) bool
}

// Score evaluates a resume against the canonical policy.
func Score(r types.Resume) types.ATSScore {
	return ScoreWith(PolicyV2, r)
}

// ScoreWith evaluates a resume against the given policy. Unknown policies
// fall back to the canonical one.
func ScoreWith(p Policy, r types.Resume) types.ATSScore {
	if p == PolicyV1 {
		return scoreLegacy(r)
	}
	return evaluate(PolicyV2, canonicalRules, 0, r)
}

func evaluate(p Policy, rules []rule, base int, r types.Resume) types.ATSScore {
	score := base
	suggestions := make([]string, 0, len(rules))
	for _, rl := range rules {
		if rl.pass(r) {
			score += rl.points
			continue
		}
		if rl.suggestion != "" {
			suggestions = append(suggestions, rl.suggestion)
		}
	}
	return types.ATSScore{
		Score:       min(score, maxScore),
		Suggestions: suggestions,
		Policy:      string(p),
	}
}

const maxScore = 100

// Band labels a canonical score.
func Band(score int) string {
	switch {
	case score >= 71:
		return "Strong Resume"
	case score >= 41:
		return "Getting There"
	default:
		return "Needs Work"
	}
}

// LegacyBand labels a v1 score.
func LegacyBand(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 50:
		return "mid"
	default:
		return "low"
	}
}

// BandFor labels a score with the bands of the policy that produced it.
func BandFor(p Policy, score int) string {
	if p == PolicyV1 {
		return LegacyBand(score)
	}
	return Band(score)
}

package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// ActionVerbs are the verbs a strong bullet or summary should use
var ActionVerbs = []string{
	"Built", "Developed", "Designed", "Implemented", "Led", "Improved",
	"Created", "Optimized", "Automated", "Managed", "Orchestrated", "Spearheaded",
	"Launched", "Reduced", "Increased", "Saved", "Generated", "Delivered",
}

const (
	msgStartWithVerb    = "Start with a strong action verb (e.g., Built, Led)."
	msgMeasurableImpact = "Add measurable impact (numbers, %, $)."
)

var (
	nonLetters = regexp.MustCompile(`[^a-z]`)
	hasNumber  = regexp.MustCompile(`\d|%`)
)

// mentionsActionVerb reports whether any action verb occurs in text, ignoring case.
// Matching is by substring, so "led" also fires inside "skilled".
func mentionsActionVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, v := range ActionVerbs {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// isActionVerb reports whether word, once reduced to lower-case letters, is an action verb.
func isActionVerb(word string) bool {
	w := nonLetters.ReplaceAllString(strings.ToLower(word), "")
	for _, v := range ActionVerbs {
		if strings.ToLower(v) == w {
			return true
		}
	}
	return false
}

// Guidance returns advice for a single bullet or description, or nil when
// the text is empty or already fine. It never affects the score.
func Guidance(text string) *types.Guidance {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	first, _, _ := strings.Cut(trimmed, " ")
	if !isActionVerb(first) {
		return &types.Guidance{Type: types.GuidanceWarning, Message: msgStartWithVerb}
	}
	if !hasNumber.MatchString(text) {
		return &types.Guidance{Type: types.GuidanceSuggestion, Message: msgMeasurableImpact}
	}
	return nil
}

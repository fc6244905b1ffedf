package rendering

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/jobfit/internal/types"
)

// DigestSubject is the subject line of the digest email draft
const DigestSubject = "My 9AM Job Digest"

const longDateLayout = "Monday, January 2, 2006"

const digestText = "Top 10 Jobs For You — 9AM Digest\n" +
	"{{ longDate .Date }}\n" +
	"\n" +
	"{{ range $i, $j := .Jobs }}{{ if $i }}\n{{ end }}" +
	"{{ inc $i }}. {{ $j.Title }}\n" +
	"   {{ $j.Company }} • {{ $j.Location }}\n" +
	"   {{ $j.Experience }} • {{ $j.MatchScore }}% Match\n" +
	"   Apply: {{ $j.ApplyURL }}\n" +
	"{{ end }}" +
	"\n" +
	"\n" +
	"This digest was generated based on your preferences."

var digestTmpl = mustTemplate("digest", digestText)

// DigestText renders a digest as plain text for copying or mailing.
func DigestText(d types.Digest) (string, error) {
	return execute(digestTmpl, d)
}

// DigestTextFrom renders a digest with a custom template file. The template
// receives the digest and may use the longDate, inc and join functions.
func DigestTextFrom(templatePath string, d types.Digest) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, d)
}

// MailtoURL builds a mailto link that opens an email draft with the digest as body.
func MailtoURL(d types.Digest) (string, error) {
	body, err := DigestText(d)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("mailto:?subject=%s&body=%s", encodeComponent(DigestSubject), encodeComponent(body)), nil
}

// encodeComponent percent-encodes s for use in a URI component, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatDate renders a YYYY-MM-DD date as "Monday, March 9, 2026". Dates
// that do not parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(types.DigestDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(longDateLayout)
}

// PostedLabel describes a posting age in days.
func PostedLabel(daysAgo int) string {
	switch daysAgo {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", daysAgo)
	}
}

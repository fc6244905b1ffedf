// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobfit/internal/filtering"
	"github.com/jonathan/jobfit/internal/logger"
	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/jonathan/jobfit/internal/rendering"
	"github.com/jonathan/jobfit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = logger.Truncate(line, boxWidth-7)
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatch outputs a job's match score with the rules that fired.
func (p *Printer) PrintMatch(job types.JobPosting, breakdown ranking.Breakdown) {
	var sb strings.Builder

	score := breakdown.Total()
	sb.WriteString(fmt.Sprintf("Job:      #%d %s\n", job.ID, job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Score:    %d (%s)\n", score, ranking.BandFor(score)))

	if len(breakdown.Rules) == 0 {
		sb.WriteString("\nNo rules matched")
	} else {
		sb.WriteString("\n")
		for _, r := range breakdown.Rules {
			sb.WriteString(fmt.Sprintf("  +%-3d %s\n", r.Points, r.Rule))
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs a list of scored jobs, one line each.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobs(jobs []types.ScoredJob) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs match your search.")
		return
	}
	for _, j := range jobs {
		fmt.Fprintf(p.out, "%3d  %-4d %s · %s · %s · %s\n",
			j.MatchScore, j.ID, j.Title, j.Company, j.Location, rendering.PostedLabel(j.PostedDaysAgo))
	}
}

// PrintDigest outputs a digest with its top entries.
func (p *Printer) PrintDigest(d types.Digest) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Date:     %s\n", rendering.FormatDate(d.Date)))
	sb.WriteString(fmt.Sprintf("Jobs:     %d\n", len(d.Jobs)))

	if d.Empty() {
		sb.WriteString("\nNo matching roles today. Check again tomorrow.")
	} else {
		sb.WriteString("\n")
		for i, j := range d.Jobs {
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, j.Title))
			sb.WriteString(fmt.Sprintf("    %s · %s · %d%% match\n", j.Company, j.Location, j.MatchScore))
		}
	}

	p.printBox("DAILY DIGEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATS outputs an ATS score, its band and the top suggestions.
func (p *Printer) PrintATS(score types.ATSScore, band string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/100 (%s)\n", score.Score, band))
	sb.WriteString(fmt.Sprintf("Policy:   %s\n", score.Policy))

	top := score.Top(maxItemsToShow)
	if len(top) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range top {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		if len(score.Suggestions) > len(top) {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Suggestions)-len(top)))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterSteps outputs how many jobs each active filter removed.
func (p *Printer) PrintFilterSteps(steps []filtering.Step) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range steps {
		sb.WriteString(fmt.Sprintf("%-14s %4d -> %-4d (-%d)\n", s.Name, s.Initial, s.Left, s.Dropped))
	}

	p.printBox("FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatusHistory outputs recent status changes, newest first.
func (p *Printer) PrintStatusHistory(history []types.StatusChange) {
	if len(history) == 0 {
		return
	}

	var sb strings.Builder
	for _, h := range history {
		sb.WriteString(fmt.Sprintf("%s  %-11s %s @ %s\n",
			h.ChangedAt.Format("2006-01-02 15:04"), h.Status, h.JobTitle, h.Company))
	}

	p.printBox("RECENT STATUS UPDATES", strings.TrimSuffix(sb.String(), "\n"))
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one job against your saved preferences",
	Long:  "Computes the 0-100 match score of a catalog job (or a job read from a JSON file) against the saved preference profile and lists the rules that fired.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runMatch),
}

var (
	matchJobID   int
	matchJobFile string
	matchJSON    bool
)

func init() {
	matchCmd.Flags().IntVarP(&matchJobID, "job", "j", 0, "Catalog job id")
	matchCmd.Flags().StringVarP(&matchJobFile, "job-file", "f", "", "Path to a JobPosting JSON file")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the result as JSON")
	matchCmd.MarkFlagsMutuallyExclusive("job", "job-file")
	matchCmd.MarkFlagsOneRequired("job", "job-file")
	rootCmd.AddCommand(matchCmd)
}

// matchResult is the JSON output of the match command
type matchResult struct {
	JobID     int               `json:"jobId"`
	Score     int               `json:"score"`
	Band      ranking.Band      `json:"band"`
	Breakdown ranking.Breakdown `json:"breakdown"`
	Matches   bool              `json:"matches"`
}

func runMatch(cmd *cobra.Command, _ []string, a *app) error {
	job, err := loadMatchJob(cmd, a)
	if err != nil {
		return err
	}

	prefs, err := a.stores.Preferences.Load(cmd.Context())
	if err != nil {
		return err
	}

	breakdown := ranking.Explain(job, prefs)
	if matchJSON {
		score := breakdown.Total()
		return a.writeJSON("", matchResult{
			JobID:     job.ID,
			Score:     score,
			Band:      ranking.BandFor(score),
			Breakdown: breakdown,
			Matches:   score >= prefs.MinMatchScore,
		})
	}

	a.printer.PrintMatch(job, breakdown)
	return nil
}

func loadMatchJob(cmd *cobra.Command, a *app) (types.JobPosting, error) {
	if matchJobFile == "" {
		return a.job(cmd, matchJobID)
	}

	data, err := os.ReadFile(matchJobFile)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to read job file %s: %w", matchJobFile, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return types.JobPosting{}, fmt.Errorf("invalid job posting: %w", err)
	}
	return job, nil
}

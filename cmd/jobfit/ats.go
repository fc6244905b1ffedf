package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobfit/internal/ats"
	"github.com/jonathan/jobfit/internal/resume"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score a resume for ATS readiness",
	Long:  "Scores the stored resume, or a resume JSON file in any stored shape, and lists the improvements that would raise the score.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runATS),
}

var (
	atsResumeFile string
	atsPolicy     string
	atsJSON       bool
)

func init() {
	atsCmd.Flags().StringVarP(&atsResumeFile, "resume", "r", "", "Resume JSON file (default: the stored resume)")
	atsCmd.Flags().StringVar(&atsPolicy, "policy", string(ats.PolicyV2), "Scoring policy: v2 or the legacy v1")
	atsCmd.Flags().BoolVar(&atsJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(atsCmd)
}

// atsResult is the JSON output of the ats command
type atsResult struct {
	types.ATSScore
	Band string   `json:"band"`
	Top  []string `json:"top"`
}

func runATS(cmd *cobra.Command, _ []string, a *app) error {
	policy, err := ats.ParsePolicy(atsPolicy)
	if err != nil {
		return err
	}

	r, err := loadResume(cmd, a, atsResumeFile)
	if err != nil {
		return err
	}

	result := ats.ScoreWith(policy, r)
	band := ats.BandFor(policy, result.Score)
	if atsJSON {
		return a.writeJSON("", atsResult{ATSScore: result, Band: band, Top: result.Top(ats.MaxSuggestions)})
	}
	a.printer.PrintATS(result, band)
	return nil
}

// loadResume reads and upgrades a resume file, or loads the stored resume when path is empty.
func loadResume(cmd *cobra.Command, a *app, path string) (types.Resume, error) {
	if path == "" {
		doc, err := a.stores.Resumes.Load(cmd.Context())
		return doc.Resume, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Resume{}, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	doc, err := resume.Migrate(data)
	if err != nil {
		return types.Resume{}, err
	}
	return doc.Resume, nil
}

// readJSONFile decodes a JSON file into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Package main implements the jobfit CLI: job matching, daily digests,
// application tracking and resume scoring.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Job tracker matching, digests and resume scoring",
	Long: "jobfit scores job postings against your preferences, builds a daily digest of the best matches, " +
		"tracks application status and scores resumes for ATS readiness. State is kept in a local file, " +
		"SQLite, Postgres or Redis store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

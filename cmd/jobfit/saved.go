package main

import (
	"fmt"
	"strconv"

	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved jobs",
}

var savedToggleCmd = &cobra.Command{
	Use:   "toggle <job-id>",
	Short: "Save a job, or unsave it when already saved",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSavedToggle),
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved jobs",
	Args:  cobra.NoArgs,
	RunE:  withApp(runSavedList),
}

func init() {
	savedCmd.AddCommand(savedToggleCmd, savedListCmd)
	rootCmd.AddCommand(savedCmd)
}

func runSavedToggle(cmd *cobra.Command, args []string, a *app) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}
	job, err := a.job(cmd, id)
	if err != nil {
		return err
	}

	saved, err := a.stores.SavedJobs.Toggle(cmd.Context(), id)
	if err != nil {
		return err
	}
	verb := "Removed from saved"
	if saved {
		verb = "Saved"
	}
	_, err = fmt.Fprintf(a.out, "%s: #%d %s @ %s\n", verb, job.ID, job.Title, job.Company)
	return err
}

func runSavedList(cmd *cobra.Command, _ []string, a *app) error {
	jobs, err := a.jobs(cmd)
	if err != nil {
		return err
	}
	saved, err := savedOnly(cmd, a, jobs)
	if err != nil {
		return err
	}
	prefs, err := a.stores.Preferences.Load(cmd.Context())
	if err != nil {
		return err
	}

	a.printer.PrintJobs(ranking.ScoreAll(saved, prefs))
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track application status",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <job-id> [status]",
	Short: "Set the application status of a catalog job",
	Long:  "Sets the status of a job. When the status is omitted an interactive picker is shown.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  withApp(runStatusSet),
}

var statusHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent status changes",
	Args:  cobra.NoArgs,
	RunE:  withApp(runStatusHistory),
}

var statusJSON bool

func init() {
	statusHistoryCmd.Flags().BoolVar(&statusJSON, "json", false, "Print the history as JSON")

	statusCmd.AddCommand(statusSetCmd, statusHistoryCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatusSet(cmd *cobra.Command, args []string, a *app) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}
	job, err := a.job(cmd, id)
	if err != nil {
		return err
	}

	var status types.Status
	if len(args) == 2 {
		status, err = types.ParseStatus(args[1])
	} else {
		status, err = promptStatus(job)
	}
	if err != nil {
		return err
	}

	change, err := a.stores.Statuses.Set(cmd.Context(), job, status, time.Now())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Status updated: %s @ %s → %s\n", change.JobTitle, change.Company, change.Status)
	return err
}

// promptStatus asks for a status with an interactive picker.
func promptStatus(job types.JobPosting) (types.Status, error) {
	items := make([]string, 0, len(types.AllStatuses))
	for _, st := range types.AllStatuses {
		items = append(items, string(st))
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Status for %s @ %s", job.Title, job.Company),
		Items: items,
	}
	_, picked, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("status prompt failed: %w", err)
	}
	return types.ParseStatus(picked)
}

func runStatusHistory(cmd *cobra.Command, _ []string, a *app) error {
	history, err := a.stores.Statuses.History(cmd.Context())
	if err != nil {
		return err
	}
	if statusJSON {
		return a.writeJSON(schemas.StatusHistory, history)
	}
	a.printer.PrintStatusHistory(history)
	return nil
}

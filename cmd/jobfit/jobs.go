package main

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/filtering"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List catalog jobs with dashboard filters",
	Long:  "Scores every catalog job against your saved preferences, applies the given filters in order and sorts the result.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runJobs),
}

var (
	jobsCriteria filtering.Criteria
	jobsMode     string
	jobsExp      string
	jobsStatus   string
	jobsSort     string
	jobsSteps    bool
	jobsSaved    bool
	jobsJSON     bool
)

func init() {
	f := jobsCmd.Flags()
	f.StringVarP(&jobsCriteria.Search, "search", "s", "", "Case-insensitive substring of title or company")
	f.StringVar(&jobsCriteria.Location, "location", "", "Exact location")
	f.StringVar(&jobsMode, "mode", "", "Work mode: Remote, Hybrid or Onsite")
	f.StringVar(&jobsExp, "experience", "", "Experience band: Fresher, 0-1, 1-3 or 3-5")
	f.StringVar(&jobsCriteria.Source, "source", "", "Exact source, e.g. LinkedIn")
	f.StringVar(&jobsStatus, "status", "", "Tracked status: Not Applied, Applied, Rejected or Selected")
	f.BoolVarP(&jobsCriteria.MatchesOnly, "matches-only", "m", false, "Only jobs at or above your match threshold")
	f.StringVar(&jobsSort, "sort", "", "Order: latest, oldest, match or salary")
	f.BoolVar(&jobsSaved, "saved", false, "Only saved jobs")
	f.BoolVar(&jobsSteps, "steps", false, "Print how many jobs each filter dropped")
	f.BoolVar(&jobsJSON, "json", false, "Print the jobs as JSON")
	rootCmd.AddCommand(jobsCmd)
}

func jobsFilterCriteria() (filtering.Criteria, error) {
	c := jobsCriteria
	c.Mode = types.WorkMode(jobsMode)
	c.Experience = types.ExperienceBand(jobsExp)

	if jobsStatus != "" {
		st, err := types.ParseStatus(jobsStatus)
		if err != nil {
			return c, err
		}
		c.Status = st
	}

	key, err := filtering.ParseSortKey(jobsSort)
	if err != nil {
		return c, err
	}
	c.Sort = key
	return c, nil
}

func runJobs(cmd *cobra.Command, _ []string, a *app) error {
	criteria, err := jobsFilterCriteria()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	jobs, err := a.jobs(cmd)
	if err != nil {
		return err
	}
	if jobsSaved {
		jobs, err = savedOnly(cmd, a, jobs)
		if err != nil {
			return err
		}
	}

	prefs, err := a.stores.Preferences.Load(ctx)
	if err != nil {
		return err
	}
	if criteria.Sort == filtering.SortMatch && !prefs.HasPreferences() {
		return fmt.Errorf("sorting by match needs preferences: run 'jobfit prefs set' first")
	}
	statuses, err := a.stores.Statuses.All(ctx)
	if err != nil {
		return err
	}

	out, steps := filtering.Run(jobs, criteria, filtering.Env{Preferences: prefs, Statuses: statuses}, a.log)
	if jobsJSON {
		return a.writeJSON("", out)
	}
	if jobsSteps {
		a.printer.PrintFilterSteps(steps)
	}
	a.printer.PrintJobs(out)
	return nil
}

func savedOnly(cmd *cobra.Command, a *app, jobs []types.JobPosting) ([]types.JobPosting, error) {
	ids, err := a.stores.SavedJobs.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	saved := make(map[int]bool, len(ids))
	for _, id := range ids {
		saved[id] = true
	}

	out := make([]types.JobPosting, 0, len(ids))
	for _, j := range jobs {
		if saved[j.ID] {
			out = append(out, j)
		}
	}
	return out, nil
}

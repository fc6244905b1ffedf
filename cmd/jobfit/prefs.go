package main

import (
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and edit your job preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preference profile",
	Args:  cobra.NoArgs,
	RunE:  withApp(runPrefsShow),
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the saved preference profile",
	Long:  "Updates only the fields whose flags are given. --from replaces the whole profile with a JSON file first.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runPrefsSet),
}

var (
	prefsFrom       string
	prefsKeywords   string
	prefsLocations  []string
	prefsModes      []string
	prefsExperience string
	prefsSkills     string
	prefsMinScore   int
)

func init() {
	f := prefsSetCmd.Flags()
	f.StringVar(&prefsFrom, "from", "", "PreferenceProfile JSON file")
	f.StringVar(&prefsKeywords, "keywords", "", "Comma-separated role keywords")
	f.StringSliceVar(&prefsLocations, "locations", nil, "Preferred locations")
	f.StringSliceVar(&prefsModes, "modes", nil, "Preferred work modes: Remote, Hybrid, Onsite")
	f.StringVar(&prefsExperience, "experience", "", "Experience band: Fresher, 0-1, 1-3 or 3-5")
	f.StringVar(&prefsSkills, "skills", "", "Comma-separated skills")
	f.IntVar(&prefsMinScore, "min-score", types.DefaultMinMatchScore, "Minimum match score, 0-100")

	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string, a *app) error {
	prefs, err := a.stores.Preferences.Load(cmd.Context())
	if err != nil {
		return err
	}
	return a.writeJSON(schemas.Preferences, prefs)
}

func runPrefsSet(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	prefs, err := a.stores.Preferences.Load(ctx)
	if err != nil {
		return err
	}
	if prefsFrom != "" {
		prefs = types.DefaultPreferences()
		if err := readJSONFile(prefsFrom, &prefs); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("keywords") {
		prefs.RoleKeywords = prefsKeywords
	}
	if flags.Changed("locations") {
		prefs.PreferredLocations = prefsLocations
	}
	if flags.Changed("modes") {
		modes := make([]types.WorkMode, 0, len(prefsModes))
		for _, m := range prefsModes {
			modes = append(modes, types.WorkMode(m))
		}
		prefs.PreferredMode = modes
	}
	if flags.Changed("experience") {
		prefs.ExperienceLevel = types.ExperienceBand(prefsExperience)
	}
	if flags.Changed("skills") {
		prefs.Skills = prefsSkills
	}
	if flags.Changed("min-score") {
		prefs.MinMatchScore = prefsMinScore
	}

	if err := a.stores.Preferences.Save(ctx, prefs); err != nil {
		return err
	}
	return a.writeJSON(schemas.Preferences, prefs)
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/jobfit/internal/digest"
	"github.com/jonathan/jobfit/internal/rendering"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Generate, show and export the daily digest",
}

var digestGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's digest from the catalog",
	Long:  "Scores every catalog job, keeps the top 10 at or above your match threshold and stores the result for today, replacing any digest already stored for today.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDigestGenerate),
}

var digestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a stored digest",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDigestShow),
}

var digestExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored digest as plain text or a mailto link",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDigestExport),
}

var (
	digestDate     string
	digestJSON     bool
	digestMailto   bool
	digestOut      string
	digestTemplate string
)

func init() {
	digestGenerateCmd.Flags().BoolVar(&digestJSON, "json", false, "Print the digest as JSON")

	digestShowCmd.Flags().StringVar(&digestDate, "date", "", "Digest date as YYYY-MM-DD (default today)")
	digestShowCmd.Flags().BoolVar(&digestJSON, "json", false, "Print the digest as JSON")

	digestExportCmd.Flags().StringVar(&digestDate, "date", "", "Digest date as YYYY-MM-DD (default today)")
	digestExportCmd.Flags().BoolVar(&digestMailto, "mailto", false, "Print a mailto: draft link instead of the text")
	digestExportCmd.Flags().StringVarP(&digestOut, "out", "o", "", "Write the export to a file")
	digestExportCmd.Flags().StringVar(&digestTemplate, "template", "", "Custom text/template file for the export")

	digestCmd.AddCommand(digestGenerateCmd, digestShowCmd, digestExportCmd)
	rootCmd.AddCommand(digestCmd)
}

func runDigestGenerate(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	prefs, err := a.stores.Preferences.Load(ctx)
	if err != nil {
		return err
	}
	if !prefs.HasPreferences() {
		return errors.New("no preferences set: run 'jobfit prefs set' first")
	}

	jobs, err := a.jobs(cmd)
	if err != nil {
		return err
	}

	d, _, err := digest.Publish(ctx, a.stores.Digests, jobs, prefs, time.Now(), digest.Options{
		PersistEmpty: a.cfg.Digest.PersistEmpty,
		Logger:       a.log,
	})
	if err != nil {
		return err
	}

	if digestJSON {
		return a.writeJSON(schemas.Digest, d)
	}
	a.printer.PrintDigest(d)
	return nil
}

// loadDigest returns the digest for --date, defaulting to today.
func loadDigest(cmd *cobra.Command, a *app) (types.Digest, error) {
	date := digestDate
	if date == "" {
		date = digest.DateKey(time.Now())
	}
	if _, err := time.Parse(types.DigestDateLayout, date); err != nil {
		return types.Digest{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
	}

	d, err := a.stores.Digests.Load(cmd.Context(), date)
	if errors.Is(err, store.ErrNotFound) {
		return types.Digest{}, fmt.Errorf("no digest stored for %s: run 'jobfit digest generate'", date)
	}
	return d, err
}

func runDigestShow(cmd *cobra.Command, _ []string, a *app) error {
	d, err := loadDigest(cmd, a)
	if err != nil {
		return err
	}
	if digestJSON {
		return a.writeJSON(schemas.Digest, d)
	}
	a.printer.PrintDigest(d)
	return nil
}

func runDigestExport(cmd *cobra.Command, _ []string, a *app) error {
	d, err := loadDigest(cmd, a)
	if err != nil {
		return err
	}

	var text string
	switch {
	case digestMailto:
		text, err = rendering.MailtoURL(d)
	case digestTemplate != "":
		text, err = rendering.DigestTextFrom(digestTemplate, d)
	default:
		text, err = rendering.DigestText(d)
	}
	if err != nil {
		return err
	}
	return a.writeFile(digestOut, text)
}

package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobfit/internal/rendering"
	"github.com/jonathan/jobfit/internal/resume"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Migrate, check and export resumes",
}

var resumeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade a legacy resume record to the current shape",
	Long: "With --in, reads a resume JSON file in any stored shape and prints the upgraded document. " +
		"Without --in, upgrades the stored resume record in place.",
	Args: cobra.NoArgs,
	RunE: withApp(runResumeMigrate),
}

var resumeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as plain text",
	Args:  cobra.NoArgs,
	RunE:  withApp(runResumeExport),
}

var resumeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List what makes a resume look incomplete for export",
	Args:  cobra.NoArgs,
	RunE:  withApp(runResumeCheck),
}

var resumeSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print or store the sample resume",
	Args:  cobra.NoArgs,
	RunE:  withApp(runResumeSample),
}

var (
	resumeIn   string
	resumeOut  string
	resumeSave bool
)

func init() {
	resumeMigrateCmd.Flags().StringVarP(&resumeIn, "in", "i", "", "Resume JSON file to upgrade")
	resumeMigrateCmd.Flags().BoolVar(&resumeSave, "save", false, "Store the upgraded resume")

	resumeExportCmd.Flags().StringVarP(&resumeIn, "resume", "r", "", "Resume JSON file (default: the stored resume)")
	resumeExportCmd.Flags().StringVarP(&resumeOut, "out", "o", "", "Write the text to a file")

	resumeCheckCmd.Flags().StringVarP(&resumeIn, "resume", "r", "", "Resume JSON file (default: the stored resume)")

	resumeSampleCmd.Flags().BoolVar(&resumeSave, "save", false, "Store the sample as the current resume")

	resumeCmd.AddCommand(resumeMigrateCmd, resumeExportCmd, resumeCheckCmd, resumeSampleCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeMigrate(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	if resumeIn == "" {
		changed, err := a.stores.Resumes.MigrateInPlace(ctx)
		if err != nil {
			return err
		}
		if changed {
			_, err = fmt.Fprintln(a.out, "Stored resume upgraded")
		} else {
			_, err = fmt.Fprintln(a.out, "Stored resume already current")
		}
		return err
	}

	data, err := os.ReadFile(resumeIn)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", resumeIn, err)
	}
	doc, err := resume.Migrate(data)
	if err != nil {
		return err
	}
	if resumeSave {
		if err := a.stores.Resumes.Save(ctx, doc); err != nil {
			return err
		}
		a.log.Info("resume saved", zap.String("from", resumeIn))
	}
	return a.writeJSON(schemas.ResumeDocument, doc)
}

func runResumeExport(cmd *cobra.Command, _ []string, a *app) error {
	r, err := loadResume(cmd, a, resumeIn)
	if err != nil {
		return err
	}
	for _, issue := range resume.ExportIssues(r) {
		a.log.Warn("resume may look incomplete", zap.String("issue", issue))
	}
	return a.writeFile(resumeOut, rendering.ResumeText(r))
}

func runResumeCheck(cmd *cobra.Command, _ []string, a *app) error {
	r, err := loadResume(cmd, a, resumeIn)
	if err != nil {
		return err
	}

	issues := resume.ExportIssues(r)
	if len(issues) == 0 {
		_, err = fmt.Fprintln(a.out, "✓ Ready to export")
		return err
	}
	for _, issue := range issues {
		if _, err := fmt.Fprintf(a.out, "⚠ %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}

func runResumeSample(cmd *cobra.Command, _ []string, a *app) error {
	doc := types.DefaultResumeDocument()
	doc.Resume = resume.Sample()

	if resumeSave {
		if err := a.stores.Resumes.Save(cmd.Context(), doc); err != nil {
			return err
		}
		_, err := fmt.Fprintln(a.out, "Sample resume stored")
		return err
	}
	return a.writeJSON(schemas.ResumeDocument, doc)
}

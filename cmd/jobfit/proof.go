package main

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/proof"
	"github.com/jonathan/jobfit/internal/rendering"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
)

var proofCmd = &cobra.Command{
	Use:   "proof",
	Short: "Track verification checklists and artifact links",
}

var proofStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project status, checklist and links",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProofStatus),
}

var proofTestCmd = &cobra.Command{
	Use:   "test <item-id>",
	Short: "Mark a checklist item as passed (or failed with --fail)",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runProofTest),
}

var proofLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Set the artifact links",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProofLinks),
}

var proofCheckCmd = &cobra.Command{
	Use:   "check <steps|checklist> <item-id>",
	Short: "Toggle a resume builder step or checklist item",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runProofCheck),
}

var proofSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Print the final submission text",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProofSubmit),
}

var (
	proofFail    bool
	proofLinks   types.ProofLinks
	proofBuilder bool
)

func init() {
	proofTestCmd.Flags().BoolVar(&proofFail, "fail", false, "Mark the item as not passed")

	proofLinksCmd.Flags().StringVar(&proofLinks.Lovable, "lovable", "", "Lovable project link")
	proofLinksCmd.Flags().StringVar(&proofLinks.GitHub, "github", "", "GitHub repository link")
	proofLinksCmd.Flags().StringVar(&proofLinks.Deploy, "deploy", "", "Deployed URL")
	proofLinksCmd.Flags().BoolVar(&proofBuilder, "builder", false, "Set the resume builder submission links instead")

	proofSubmitCmd.Flags().BoolVar(&proofBuilder, "builder", false, "Print the resume builder submission instead of the job tracker one")

	proofCmd.AddCommand(proofStatusCmd, proofTestCmd, proofLinksCmd, proofCheckCmd, proofSubmitCmd)
	rootCmd.AddCommand(proofCmd)
}

//nolint:errcheck // writing to the command output
func runProofStatus(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	tests, err := a.stores.Proofs.Tests(ctx)
	if err != nil {
		return err
	}
	links, err := a.stores.Proofs.Links(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Status: %s\n", proof.Status(links, tests))
	fmt.Fprintf(a.out, "Tests Passed: %d / %d\n", proof.PassedTests(tests), len(proof.TrackerChecklist))
	for _, item := range proof.TrackerChecklist {
		mark := " "
		if tests[item.ID] {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %-16s %s\n", mark, item.ID, item.Label)
	}
	fmt.Fprintf(a.out, "Lovable: %s\nGitHub:  %s\nDeploy:  %s\n",
		orDash(links.Lovable), orDash(links.GitHub), orDash(links.Deploy))
	return nil
}

func runProofTest(cmd *cobra.Command, args []string, a *app) error {
	tests, err := a.stores.Proofs.SetTest(cmd.Context(), args[0], !proofFail)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Tests Passed: %d / %d\n", proof.PassedTests(tests), len(proof.TrackerChecklist))
	return err
}

func runProofLinks(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	if proofBuilder {
		return setBuilderLinks(cmd, a)
	}

	links, err := a.stores.Proofs.Links(ctx)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lovable") {
		links.Lovable = proofLinks.Lovable
	}
	if flags.Changed("github") {
		links.GitHub = proofLinks.GitHub
	}
	if flags.Changed("deploy") {
		links.Deploy = proofLinks.Deploy
	}

	if err := a.stores.Proofs.SaveLinks(ctx, links); err != nil {
		return err
	}
	status, err := a.stores.Proofs.Status(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Status: %s\n", status)
	return err
}

func setBuilderLinks(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	sub, err := a.stores.Proofs.Submission(ctx)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lovable") {
		sub.LovableLink = proofLinks.Lovable
	}
	if flags.Changed("github") {
		sub.GitHubLink = proofLinks.GitHub
	}
	if flags.Changed("deploy") {
		sub.DeployedLink = proofLinks.Deploy
	}

	if err := a.stores.Proofs.SaveSubmission(ctx, sub); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Shipped: %t\n", proof.IsShipped(sub))
	return err
}

func runProofCheck(cmd *cobra.Command, args []string, a *app) error {
	sub, err := a.stores.Proofs.ToggleSubmission(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	done := 0
	for _, item := range append(append([]types.CheckItem(nil), sub.Steps...), sub.Checklist...) {
		if item.Checked {
			done++
		}
	}
	_, err = fmt.Fprintf(a.out, "Completed: %d / %d\n", done, len(sub.Steps)+len(sub.Checklist))
	return err
}

func runProofSubmit(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	var (
		text string
		err  error
	)
	if proofBuilder {
		var sub types.Submission
		if sub, err = a.stores.Proofs.Submission(ctx); err != nil {
			return err
		}
		text, err = rendering.BuilderSubmissionText(sub)
	} else {
		var links types.ProofLinks
		if links, err = a.stores.Proofs.Links(ctx); err != nil {
			return err
		}
		text, err = rendering.TrackerSubmissionText(links)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, text)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/ats"
	"github.com/spf13/cobra"
)

var guidanceCmd = &cobra.Command{
	Use:   "guidance <text>...",
	Short: "Check a resume bullet for an action verb and a measurable result",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGuidance,
}

func init() {
	rootCmd.AddCommand(guidanceCmd)
}

func runGuidance(cmd *cobra.Command, args []string) error {
	g := ats.Guidance(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if g == nil {
		_, err := fmt.Fprintln(out, "✓ Looks good")
		return err
	}
	_, err := fmt.Fprintf(out, "%s: %s\n", g.Type, g.Message)
	return err
}

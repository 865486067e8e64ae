package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/snapshot"
	"github.com/alexisbeaulieu97/storyshelf/internal/termui"
)

type verifyOptions struct {
	jsonOutput bool
	showDiff   bool
}

func newVerifyCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify [build-dir]",
		Short: "Check that stories still render exactly as in a previous build",
		Long: `Re-render every story and compare it with the pages of a previous
'storyshelf build'. Exits non-zero when any story drifted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", true, "Print a unified diff for changed stories")

	return cmd
}

func runVerify(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *verifyOptions) error {
	app, err := loadApp(cmd, rootFlags, "verify")
	if err != nil {
		return err
	}

	dir := app.config.OutputDir
	if len(args) == 1 {
		dir = args[0]
	}

	report, err := snapshot.NewBuilder(app.renderer, app.library, app.logger).Verify(cmd.Context(), dir)
	if err != nil {
		return newCommandError("verify", fmt.Sprintf("comparing against %s", dir), err, "Run 'storyshelf build' first to create a baseline.")
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else {
		styled := supportsUnicode(out)
		theme := app.theme()
		for _, d := range report.Drift {
			label := string(d.Status)
			if styled {
				label = theme.Badge(driftVariant(d.Status), label)
			}
			fmt.Fprintf(out, "%s %s\n", label, d.ID)
			if opts.showDiff && d.Diff != "" {
				fmt.Fprintln(out, d.Diff)
			}
		}
		fmt.Fprintf(out, "Checked %d stories against build %s: %d drifted.\n", report.Checked, report.BuildID, len(report.Drift))
	}

	if !report.Clean() {
		return newCommandError("verify", fmt.Sprintf("%d stories differ from %s", len(report.Drift), dir),
			fmt.Errorf("rendered markup drifted"),
			"Review the diff, then run 'storyshelf build' to accept the new output.")
	}
	return nil
}

func driftVariant(status snapshot.DriftStatus) termui.Variant {
	switch status {
	case snapshot.DriftChanged:
		return termui.VariantWarning
	case snapshot.DriftFailed, snapshot.DriftRemoved:
		return termui.VariantError
	default:
		return termui.VariantInfo
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/audit"
	"github.com/alexisbeaulieu97/storyshelf/internal/termui"
)

type auditOptions struct {
	jsonOutput bool
	allow      []string
}

func newAuditCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check rendered stories against the host markup conventions",
		Long: `Render every story and report class names outside the host
application's vocabulary and colour literals in inline styles. Exits
non-zero when anything is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringSliceVar(&opts.allow, "allow", nil, "Additional class names to accept")

	return cmd
}

func runAudit(cmd *cobra.Command, rootFlags *rootFlags, opts *auditOptions) error {
	app, err := loadApp(cmd, rootFlags, "audit")
	if err != nil {
		return err
	}

	report := audit.New(opts.allow...).Run(app.renderer.RenderAll())
	app.logger.Debug("audit finished", "stories", report.Stories, "findings", len(report.Findings), "failures", len(report.Failures))

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else if err := renderAuditReport(cmd, app, report); err != nil {
		return err
	}

	if !report.Clean() {
		return newCommandError("audit", fmt.Sprintf("%d findings and %d failed stories", len(report.Findings), len(report.Failures)),
			fmt.Errorf("catalog does not follow the host conventions"),
			"Use a host class name and reference colours through token variables.")
	}
	return nil
}

func renderAuditReport(cmd *cobra.Command, app *appContext, report audit.Report) error {
	out := cmd.OutOrStdout()
	if supportsUnicode(out) {
		fmt.Fprintln(out, auditPanel(app.theme(), report))
		if report.Clean() {
			return nil
		}
	} else if report.Clean() {
		fmt.Fprintf(out, "Audited %d stories: clean.\n", report.Stories)
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if len(report.Findings) > 0 {
		fmt.Fprintln(writer, "STORY\tKIND\tVALUE\tELEMENT")
		for _, f := range report.Findings {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", f.StoryID, f.Kind, f.Value, f.Element)
		}
	}
	if len(report.Failures) > 0 {
		fmt.Fprintln(writer, "STORY\tCODE\tKEY\t")
		for _, f := range report.Failures {
			fmt.Fprintf(writer, "%s\t%s\t%s\t\n", f.StoryID, f.Code, f.Key)
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAudited %d stories.\n", report.Stories)
	return nil
}

func auditPanel(theme termui.Theme, report audit.Report) string {
	status := theme.Badge(termui.VariantSuccess, "CLEAN")
	if !report.Clean() {
		status = theme.Badge(termui.VariantError, "FAILED")
	}
	return termui.NewPanel(
		fmt.Sprintf("%s %d stories", status, report.Stories),
		fmt.Sprintf("findings: %d", len(report.Findings)),
		fmt.Sprintf("failures: %d", len(report.Failures)),
	).WithTitle("Markup audit").View(theme)
}

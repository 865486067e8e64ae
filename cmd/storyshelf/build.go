package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/snapshot"
)

type buildOptions struct {
	outDir    string
	sourceDir string
	decorate  bool
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write a static build of the catalog",
		Long: `Write index.json, tokens.css and one HTML page per story. The manifest
records the git revision of the source checkout when there is one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (defaults to output_dir from the config)")
	cmd.Flags().StringVar(&opts.sourceDir, "source", ".", "Checkout whose git revision is recorded")
	cmd.Flags().BoolVar(&opts.decorate, "decorate", false, "Apply the presentation decorators to every page")

	return cmd
}

func runBuild(cmd *cobra.Command, rootFlags *rootFlags, opts *buildOptions) error {
	app, err := loadApp(cmd, rootFlags, "build")
	if err != nil {
		return err
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = app.config.OutputDir
	}

	builder := snapshot.NewBuilder(app.renderer, app.library, app.logger)
	manifest, err := builder.Build(cmd.Context(), snapshot.Options{
		OutputDir: outDir,
		SourceDir: opts.sourceDir,
		Decorate:  opts.decorate,
	})
	if err != nil {
		return newCommandError("build", fmt.Sprintf("writing catalog to %s", outDir), err, "Check that the output directory is writable.")
	}

	out := cmd.OutOrStdout()
	written := len(manifest.Stories) - len(manifest.Failed())
	fmt.Fprintf(out, "Build %s: %d stories written to %s\n", manifest.BuildID, written, outDir)
	if supportsUnicode(out) {
		fmt.Fprintln(out, app.theme().NewMeter(len(manifest.Stories), 30).View(written))
	}
	if manifest.Revision.Commit != "" {
		fmt.Fprintf(out, "Revision: %s (%s)\n", manifest.Revision.Commit, valueOrFallback(manifest.Revision.Branch, "detached"))
	}

	if failed := manifest.Failed(); len(failed) > 0 {
		for _, e := range failed {
			fmt.Fprintf(out, "  skipped %s: %s\n", e.ID, e.Error.Message)
		}
		return newCommandError("build", fmt.Sprintf("%d stories failed to render", len(failed)), fmt.Errorf("incomplete build"), "Run 'storyshelf render <id>' on a skipped story for details.")
	}
	return nil
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

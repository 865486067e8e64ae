package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/docs"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

type docsOptions struct {
	style  string
	width  int
	raw    bool
	outDir string
}

func newDocsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &docsOptions{}

	cmd := &cobra.Command{
		Use:   "docs [group-title]",
		Short: "Show the generated documentation of autodocs groups",
		Long: `Show the generated documentation of every group tagged autodocs, or of
one group. Markdown is rendered for the terminal unless stdout is not a TTY
or --raw is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "dark", "Glamour style: dark, light, notty, dracula or tokyo-night")
	cmd.Flags().IntVar(&opts.width, "width", 100, "Word wrap width")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print markdown without terminal rendering")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "Write one markdown file per group into this directory")

	return cmd
}

func runDocs(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *docsOptions) error {
	app, err := loadApp(cmd, rootFlags, "docs")
	if err != nil {
		return err
	}
	gen := docs.New(app.renderer)

	var pages []docs.Page
	if len(args) == 1 {
		md, err := gen.Markdown(args[0])
		if err != nil {
			return newCommandError("generate docs", fmt.Sprintf("building page for %q", args[0]), err, "Run 'storyshelf list' to view group titles.")
		}
		pages = []docs.Page{{Title: args[0], Slug: story.Slug(args[0]), Markdown: md}}
	} else {
		pages, err = gen.Pages()
		if err != nil {
			return newCommandError("generate docs", "building pages", err, "")
		}
	}

	if opts.outDir != "" {
		return writeDocs(cmd, app, pages, opts.outDir)
	}

	render := !opts.raw && supportsUnicode(cmd.OutOrStdout())
	for i, page := range pages {
		out := page.Markdown
		if render {
			out, err = docs.Render(page.Markdown, opts.style, opts.width)
			if err != nil {
				return newCommandError("generate docs", fmt.Sprintf("rendering %q", page.Title), err, "Pick a built-in --style.")
			}
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}

func writeDocs(cmd *cobra.Command, app *appContext, pages []docs.Page, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newCommandError("generate docs", "creating output directory", err, "Check directory permissions.")
	}
	for _, page := range pages {
		path := filepath.Join(dir, page.Slug+".md")
		if err := os.WriteFile(path, []byte(page.Markdown), 0o644); err != nil {
			return newCommandError("generate docs", fmt.Sprintf("writing %s", path), err, "Check directory permissions.")
		}
		app.logger.Debug("docs page written", "path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", len(pages), dir)
	return nil
}

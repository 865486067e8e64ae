package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
)

type renderOptions struct {
	args       map[string]string
	decorate   bool
	document   bool
	jsonOutput bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story-id>",
		Short: "Render one story to HTML",
		Long: `Render one story to HTML on stdout.

Control values can be overridden with --arg name=value; explicit stories
accept no overrides.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringToStringVar(&opts.args, "arg", nil, "Override a control value (name=value), repeatable")
	cmd.Flags().BoolVar(&opts.decorate, "decorate", false, "Apply the configured presentation decorators")
	cmd.Flags().BoolVar(&opts.document, "document", false, "Wrap the fragment in a standalone HTML page")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the markup with its resolved args as JSON")

	return cmd
}

type renderPayload struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Variant  string            `json:"variant"`
	Explicit bool              `json:"explicit"`
	Args     map[string]string `json:"args,omitempty"`
	Schema   *argtypes.Schema  `json:"schema,omitempty"`
	HTML     string            `json:"html"`
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, id string, opts *renderOptions) error {
	app, err := loadApp(cmd, rootFlags, "render")
	if err != nil {
		return err
	}

	group, variant, err := app.renderer.Registry().ByID(id)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("looking up story %q", id), err, "Run 'storyshelf list' to view story IDs.")
	}

	overrides, err := argtypes.Parse(group.Schema, opts.args)
	if err != nil {
		return newCommandError("render", "parsing --arg values", err, "Boolean controls take true or false.")
	}

	var res catalog.Result
	if opts.decorate {
		res, err = app.renderer.Preview(group.Title, variant.Name, overrides)
	} else {
		res, err = app.renderer.RenderWithArgs(group.Title, variant.Name, overrides)
	}
	if err != nil {
		return newCommandError("render", fmt.Sprintf("rendering %s", id), err, "Check the --arg names and values against 'storyshelf docs'.")
	}

	ref := res.Ref
	out := res.Fragment.String()
	if opts.document {
		page, err := app.library.Document(components.DocumentProps{
			Title: ref.Title + " · " + ref.Name,
			Body:  res.Fragment.HTML(),
		})
		if err != nil {
			return newCommandError("render", "wrapping story in a page", err, "")
		}
		out = page.String()
	}

	if opts.jsonOutput {
		payload := renderPayload{
			ID:       ref.ID,
			Title:    ref.Title,
			Variant:  ref.Variant,
			Explicit: res.Explicit,
			Schema:   res.Schema,
			HTML:     out,
		}
		if len(res.Args) > 0 {
			payload.Args = make(map[string]string, len(res.Args))
			for _, k := range res.Args.Keys() {
				payload.Args[k] = res.Args.String(k)
			}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

type listOptions struct {
	jsonOutput bool
	tag        string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every story in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "Only list groups carrying this tag")

	return cmd
}

type listedStory struct {
	story.Ref
	Explicit bool `json:"explicit"`
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := loadApp(cmd, rootFlags, "list")
	if err != nil {
		return err
	}
	reg := app.renderer.Registry()

	var listed []listedStory
	for _, group := range reg.Groups() {
		if opts.tag != "" && !group.HasTag(opts.tag) {
			continue
		}
		variants, err := reg.Variants(group.Title)
		if err != nil {
			return newCommandError("list", fmt.Sprintf("reading variants of %q", group.Title), err, "")
		}
		for _, v := range variants {
			listed = append(listed, listedStory{
				Ref:      story.Ref{ID: story.ID(group.Title, v.Name), Title: group.Title, Variant: v.Name, Name: story.DisplayName(v.Name)},
				Explicit: v.Explicit(),
			})
		}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(listed)
	}

	if len(listed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stories match.")
		return nil
	}
	return renderListTable(cmd, listed)
}

func renderListTable(cmd *cobra.Command, listed []listedStory) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tGROUP\tSTORY\tRENDER")

	useUnicode := supportsUnicode(cmd.OutOrStdout())
	for _, s := range listed {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Name, renderMode(s.Explicit, useUnicode))
	}
	return writer.Flush()
}

func renderMode(explicit, useUnicode bool) string {
	switch {
	case explicit && useUnicode:
		return "◆ explicit"
	case explicit:
		return "[*] explicit"
	case useUnicode:
		return "◇ args"
	default:
		return "[ ] args"
	}
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}


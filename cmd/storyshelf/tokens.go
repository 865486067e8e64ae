package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

type tokensOptions struct {
	css        bool
	jsonOutput bool
	kind       string
}

func newTokensCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [name...]",
		Short: "Show the resolved design tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print the :root custom-property stylesheet")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "Only show tokens of this kind (color, length, font, shadow)")

	return cmd
}

type tokenRow struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Layer string `json:"layer"`
	Alias string `json:"alias,omitempty"`
	Value string `json:"value"`
}

func runTokens(cmd *cobra.Command, rootFlags *rootFlags, names []string, opts *tokensOptions) error {
	app, err := loadApp(cmd, rootFlags, "tokens")
	if err != nil {
		return err
	}

	if opts.css {
		fmt.Fprint(cmd.OutOrStdout(), app.tokens.Stylesheet())
		return nil
	}

	var selected []tokens.Token
	if len(names) == 0 {
		selected = app.tokens.Tokens()
	} else {
		for _, name := range names {
			tok, err := app.tokens.Resolve(name)
			if err != nil {
				return newCommandError("show tokens", fmt.Sprintf("resolving %q", name), err, "Run 'storyshelf tokens' to list every token name.")
			}
			selected = append(selected, tok)
		}
	}

	rows := make([]tokenRow, 0, len(selected))
	for _, tok := range selected {
		if opts.kind != "" && string(tok.Kind) != opts.kind {
			continue
		}
		rows = append(rows, tokenRow{Name: tok.Name, Kind: string(tok.Kind), Layer: tok.Layer.String(), Alias: tok.Alias, Value: tok.Value})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	swatches := supportsUnicode(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tKIND\tLAYER\tVALUE")
	for _, row := range rows {
		value := row.Value
		if row.Alias != "" {
			value = fmt.Sprintf("%s -> %s", row.Alias, row.Value)
		}
		if swatches && row.Kind == string(tokens.KindColor) {
			value = swatch(row.Value) + " " + value
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", row.Name, row.Kind, row.Layer, value)
	}
	return writer.Flush()
}

var swatchStyle = lipgloss.NewStyle().Width(2)

func swatch(hex string) string {
	return swatchStyle.Background(lipgloss.Color(hex)).Render("")
}

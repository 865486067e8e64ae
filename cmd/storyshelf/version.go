package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/stories"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionOptions struct {
	short bool
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the bundled catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.short, "short", false, "Print only the version number")

	return cmd
}

// runVersion reports the catalog compiled into the binary with the stock Nord
// tokens, so it works without a config file.
func runVersion(cmd *cobra.Command, opts *versionOptions) error {
	out := cmd.OutOrStdout()
	if opts.short {
		fmt.Fprintln(out, version)
		return nil
	}

	fmt.Fprintf(out, "Storyshelf %s, a component story catalog\ncommit: %s\nbuilt: %s\n", version, commit, date)

	resolver := tokens.Nord()
	reg, err := stories.Build(components.MustNewLibrary(resolver), nil)
	if err != nil {
		return newCommandError("report version", "registering stories", err, "A story declaration is inconsistent with its group schema.")
	}
	fmt.Fprintf(out, "catalog: %d stories in %d groups, %d tokens\n", reg.Len(), len(reg.Groups()), len(resolver.Names()))
	return nil
}

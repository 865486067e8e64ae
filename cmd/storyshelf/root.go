package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	tokensFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "storyshelf",
		Short:         "Storyshelf renders and inspects the component story catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to storyshelf.yaml (defaults to ./storyshelf.yaml when present)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.tokensFile, "tokens", "", "YAML or TOML file with design token overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newDocsCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/tui"
)

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in an interactive terminal UI",
		Long:  `Browse stories in a terminal UI: enter shows the rendered markup and args, b cycles background presets.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags, "browse")
			if err != nil {
				return err
			}
			app.logger.Info("launching browser", "stories", app.renderer.Registry().Len())
			if err := tui.Run(app.renderer); err != nil {
				return newCommandError("browse", "running the terminal UI", err, "Run storyshelf in an interactive terminal.")
			}
			return nil
		},
	}

	return cmd
}

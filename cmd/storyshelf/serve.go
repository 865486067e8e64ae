package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve story previews over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to server.addr from the config)")

	return cmd
}

func runServe(cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	app, err := loadApp(cmd, rootFlags, "serve")
	if err != nil {
		return err
	}

	addr := opts.addr
	if addr == "" {
		addr = app.config.Server.Addr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d stories on http://%s\n", app.renderer.Registry().Len(), addr)
	if err := server.New(app.renderer, app.library, app.logger).Run(cmd.Context(), addr); err != nil {
		return newCommandError("serve", fmt.Sprintf("listening on %s", addr), err, "Pick a free address with --addr.")
	}
	return nil
}

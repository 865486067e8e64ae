package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/config"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/stories"
	"github.com/alexisbeaulieu97/storyshelf/internal/termui"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

// appContext holds everything a command needs once the catalog is built.
type appContext struct {
	config   *config.Config
	logger   *logger.Logger
	tokens   *tokens.Resolver
	library  *components.Library
	renderer *catalog.Renderer
}

// loadApp reads the configuration, resolves tokens and builds the catalog.
// Each invocation gets its own presentation context so commands stay
// independent of one another inside a single process.
func loadApp(cmd *cobra.Command, flags *rootFlags, op string) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(op, "loading configuration", err, "Fix the reported line in storyshelf.yaml or pass --config.")
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "command." + op,
	})
	if err != nil {
		return nil, newCommandError(op, "creating logger", err, "Use one of trace, debug, info, warn or error.")
	}

	resolver, err := loadTokens(flags, cfg)
	if err != nil {
		return nil, newCommandError(op, "loading design tokens", err, "Check the token file: semantic tokens must alias a raw palette entry.")
	}

	lib, err := components.NewLibrary(resolver)
	if err != nil {
		return nil, newCommandError(op, "parsing component templates", err, "Rebuild storyshelf; the embedded templates are invalid.")
	}

	reg, err := stories.Build(lib, log)
	if err != nil {
		return nil, newCommandError(op, "registering stories", err, "A story declaration is inconsistent with its group schema.")
	}

	pres := presentation.New(log)
	if err := pres.ConfigureFrom(cfg, resolver); err != nil {
		return nil, newCommandError(op, "configuring presentation", err, "Check backgrounds, default_background and decorators in storyshelf.yaml.")
	}

	log.Debug("catalog ready", "groups", len(reg.Groups()), "stories", reg.Len())

	return &appContext{
		config:   cfg,
		logger:   log,
		tokens:   resolver,
		library:  lib,
		renderer: catalog.New(reg, pres, log),
	}, nil
}

// theme styles terminal output with the catalog's own colour tokens.
func (a *appContext) theme() termui.Theme {
	theme, err := termui.FromTokens(a.tokens)
	if err != nil {
		a.logger.Warn("token overrides lack a semantic colour, using Nord", "error", err.Error())
		return termui.Default()
	}
	return theme
}

func loadTokens(flags *rootFlags, cfg *config.Config) (*tokens.Resolver, error) {
	path := flags.tokensFile
	if path == "" {
		path = cfg.TokensFile
	}
	if path == "" {
		return tokens.Nord(), nil
	}
	return tokens.LoadFile(path)
}

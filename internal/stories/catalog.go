// Package stories declares the catalog: every component group with its
// schema, default binder and named variants.
package stories

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

// TagAutodocs marks groups that get a generated documentation page.
const TagAutodocs = "autodocs"

type declaration struct {
	group    story.Group
	variants []story.Variant
}

type declareFunc func(*components.Library) declaration

var groups = []declareFunc{
	buttons,
	alerts,
	cards,
	forms,
	navigation,
	pageTemplates,
	capture,
}

// Register declares every catalog group and its variants on reg.
func Register(reg *story.Registry, lib *components.Library) error {
	for _, fn := range groups {
		d := fn(lib)
		if err := reg.Register(d.group); err != nil {
			return fmt.Errorf("register %s: %w", d.group.Title, err)
		}
		for _, v := range d.variants {
			if err := reg.AddVariant(d.group.Title, v); err != nil {
				return fmt.Errorf("add variant %s/%s: %w", d.group.Title, v.Name, err)
			}
		}
	}
	return nil
}

// Build returns a registry holding the full catalog.
func Build(lib *components.Library, log *logger.Logger) (*story.Registry, error) {
	reg := story.NewRegistry(log)
	if err := Register(reg, lib); err != nil {
		return nil, err
	}
	log.Debug("catalog built", "groups", len(reg.Groups()), "stories", reg.Len())
	return reg, nil
}

func autodocs() []string {
	return []string{TagAutodocs}
}

func bound(name string, args argtypes.Args) story.Variant {
	return story.Variant{Name: name, Args: args}
}

func explicit(name string, render story.RenderFunc) story.Variant {
	return story.Variant{Name: name, Render: render}
}

// renderBound renders a binder outside its own group, validating the
// overrides against schema first.
func renderBound(b components.Binder, schema *argtypes.Schema, overrides argtypes.Args) (components.Fragment, error) {
	args, err := argtypes.Validate(schema, argtypes.Merge(b.Defaults(), overrides))
	if err != nil {
		return "", err
	}
	return b.Render(args)
}

func join(frags ...components.Fragment) template.HTML {
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = string(f)
	}
	return template.HTML(strings.Join(parts, "\n"))
}

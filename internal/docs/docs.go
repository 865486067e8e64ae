// Package docs generates a markdown documentation page for every group
// tagged autodocs and renders it for the terminal with glamour.
package docs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Tag selects the groups that get a page.
const Tag = "autodocs"

// Page is the generated documentation for one group.
type Page struct {
	Title    string
	Slug     string
	Markdown string
}

// Generator builds pages from a renderer's registry.
type Generator struct {
	renderer *catalog.Renderer
}

// New returns a generator over r.
func New(r *catalog.Renderer) *Generator {
	return &Generator{renderer: r}
}

// Pages returns one page per autodocs group, sorted by title.
func (g *Generator) Pages() ([]Page, error) {
	var pages []Page
	for _, group := range g.renderer.Registry().Filter(Tag) {
		md, err := g.Markdown(group.Title)
		if err != nil {
			return nil, err
		}
		pages = append(pages, Page{Title: group.Title, Slug: story.Slug(group.Title), Markdown: md})
	}
	return pages, nil
}

// Markdown renders the page for one group. Stories that fail to render are
// listed with their error code instead of markup.
func (g *Generator) Markdown(title string) (string, error) {
	reg := g.renderer.Registry()
	group, err := reg.Group(title)
	if err != nil {
		return "", err
	}
	variants, err := reg.Variants(title)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", group.Title)
	if group.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", group.Description)
	}

	if group.Schema != nil && group.Schema.Len() > 0 {
		var defaults argtypes.Args
		if group.Binder != nil {
			defaults = group.Binder.Defaults()
		}
		b.WriteString("## Args\n\n")
		b.WriteString("| Name | Control | Options | Description | Default |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, f := range group.Schema.Fields() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				f.Name, f.Control, cell(strings.Join(f.Options, ", ")), cell(f.Description), cell(defaults.String(f.Name)))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Stories\n")
	for _, v := range variants {
		fmt.Fprintf(&b, "\n### %s\n\n", story.DisplayName(v.Name))
		if v.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", v.Description)
		}

		res, err := g.renderer.RenderStory(title, v.Name)
		if err != nil {
			fmt.Fprintf(&b, "> Failed to render: `%s` (%s)\n", storyerrors.CodeOf(err), storyerrors.KeyOf(err))
			continue
		}
		if len(res.Args) > 0 {
			pairs := make([]string, 0, len(res.Args))
			for _, k := range res.Args.Keys() {
				pairs = append(pairs, fmt.Sprintf("`%s=%s`", k, res.Args.String(k)))
			}
			fmt.Fprintf(&b, "Args: %s\n\n", strings.Join(pairs, " "))
		}
		fmt.Fprintf(&b, "```html\n%s\n```\n", res.Fragment)
	}
	return b.String(), nil
}

// Render formats markdown for a terminal of the given width. Style is a
// glamour standard style name such as "dark", "light" or "notty".
func Render(markdown, style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

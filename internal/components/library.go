// Package components renders the catalog's presentational fragments. Each
// component has typed props and a render method backed by an embedded
// html/template set; binders adapt validated story arguments to those props.
//
// Rendering is pure: output depends only on the props and the read-only
// token resolver the Library was built with.
package components

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Fragment is a rendered markup fragment.
type Fragment string

// HTML marks a fragment as trusted markup for embedding in another template.
func (f Fragment) HTML() template.HTML {
	return template.HTML(f)
}

func (f Fragment) String() string {
	return string(f)
}

// Library holds the parsed template set bound to a token resolver.
type Library struct {
	tmpl   *template.Template
	tokens *tokens.Resolver
}

// NewLibrary parses the embedded templates. Token references inside the
// templates are resolved through r at render time.
func NewLibrary(r *tokens.Resolver) (*Library, error) {
	if r == nil {
		return nil, fmt.Errorf("token resolver is required")
	}

	lib := &Library{tokens: r}
	funcs := template.FuncMap{
		"token":        lib.tokenCSS,
		"longDate":     longDate,
		"longDateTime": longDateTime,
	}

	tmpl, err := template.New("components").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse component templates: %w", err)
	}
	lib.tmpl = tmpl
	return lib, nil
}

// MustNewLibrary is NewLibrary for resolvers known to be valid.
func MustNewLibrary(r *tokens.Resolver) *Library {
	lib, err := NewLibrary(r)
	if err != nil {
		panic(err)
	}
	return lib
}

// Tokens exposes the resolver the library renders with.
func (l *Library) Tokens() *tokens.Resolver {
	return l.tokens
}

func (l *Library) tokenCSS(name string) (template.CSS, error) {
	ref, err := l.tokens.Var(name)
	if err != nil {
		return "", err
	}
	return template.CSS(ref), nil
}

// colorCSS admits a validated colour argument. Token references must name a
// registered colour token.
func (l *Library) colorCSS(value string) (template.CSS, error) {
	if value == "" {
		return "", nil
	}
	color, err := l.tokens.Color(value)
	if err != nil {
		return "", err
	}
	return template.CSS(color), nil
}

func (l *Library) execute(name string, data any) (Fragment, error) {
	var buf bytes.Buffer
	if err := l.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", storyerrors.Wrap(storyerrors.CodeRenderFailed, name, err)
	}
	return Fragment(strings.TrimSpace(buf.String())), nil
}

func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func longDateTime(t time.Time) string {
	return t.Format("January 2, 2006 15:04")
}

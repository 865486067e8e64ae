// Package story holds the story registry: component groups, their argument
// schemas and default binders, and the named variants declared against them.
package story

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Registry stores story groups keyed by title. Variants keep insertion order.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]*entry
	ids    map[string]Ref
	logger *logger.Logger
}

type entry struct {
	group    Group
	variants []Variant
	index    map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		groups: make(map[string]*entry),
		ids:    make(map[string]Ref),
		logger: log,
	}
}

// Register adds a component group. The binder defaults, when a binder is
// present, must satisfy the group schema.
func (r *Registry) Register(g Group) error {
	title := g.Title
	if strings.TrimSpace(title) == "" {
		return storyerrors.NewValidationError("title", "group title must not be empty", nil)
	}
	if strings.TrimSpace(title) != title {
		return storyerrors.NewValidationError("title", "group title "+strconv.Quote(title)+" must not start or end with spaces", nil)
	}
	if Slug(title) == "" {
		return storyerrors.NewValidationError("title", "group title must contain letters or digits", nil)
	}

	if g.Binder != nil {
		if _, err := argtypes.Validate(g.Schema, g.Binder.Defaults()); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[title]; exists {
		return storyerrors.New(storyerrors.CodeDuplicateGroup, title, "group already registered")
	}
	slug := Slug(title)
	for existing := range r.groups {
		if Slug(existing) == slug {
			return storyerrors.New(storyerrors.CodeDuplicateGroup, title, "group id collides with "+existing)
		}
	}

	r.groups[title] = &entry{group: cloneGroup(g), index: make(map[string]int)}
	r.logger.Debug("registered story group", "title", title, "tags", strings.Join(g.Tags, ","))
	return nil
}

// AddVariant appends a variant to a registered group. Binder-driven variants
// have their args validated against the group schema now rather than at
// render time.
func (r *Registry) AddVariant(title string, v Variant) error {
	name := v.Name
	if strings.TrimSpace(name) != name {
		return storyerrors.NewValidationError("name", "variant name "+strconv.Quote(name)+" must not start or end with spaces", nil)
	}
	if Slug(name) == "" {
		return storyerrors.NewValidationError("name", "variant name must contain letters or digits", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.groups[title]
	if !ok {
		return storyerrors.New(storyerrors.CodeUnknownGroup, title, "group is not registered")
	}
	if _, exists := e.index[name]; exists {
		return storyerrors.New(storyerrors.CodeDuplicateVariant, name, "variant already exists in "+title)
	}

	id := ID(title, name)
	if prior, taken := r.ids[id]; taken {
		return storyerrors.New(storyerrors.CodeDuplicateVariant, name, "story id "+id+" already used by "+prior.Variant)
	}

	if !v.Explicit() {
		if e.group.Binder == nil {
			return storyerrors.NewValidationError("render", "group "+title+" has no binder; variant "+name+" needs a render function", nil)
		}
		normalised, err := argtypes.Validate(e.group.Schema, v.Args)
		if err != nil {
			return err
		}
		v.Args = normalised
	} else if v.Args != nil {
		v.Args = v.Args.Clone()
	}

	e.index[name] = len(e.variants)
	e.variants = append(e.variants, v)
	r.ids[id] = Ref{ID: id, Title: title, Variant: name, Name: DisplayName(name)}
	r.logger.Debug("added story variant", "title", title, "variant", name, "explicit", v.Explicit())
	return nil
}

// Lookup returns the group and variant registered under (title, name).
func (r *Registry) Lookup(title, name string) (Group, Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.groups[title]
	if !ok {
		return Group{}, Variant{}, storyerrors.New(storyerrors.CodeNotFound, title, "group not found")
	}
	i, ok := e.index[name]
	if !ok {
		return Group{}, Variant{}, storyerrors.New(storyerrors.CodeNotFound, name, "variant not found in "+title)
	}
	return cloneGroup(e.group), cloneVariant(e.variants[i]), nil
}

// ByID resolves a story id such as "components-button--primary".
func (r *Registry) ByID(id string) (Group, Variant, error) {
	r.mu.RLock()
	ref, ok := r.ids[id]
	r.mu.RUnlock()
	if !ok {
		return Group{}, Variant{}, storyerrors.New(storyerrors.CodeNotFound, id, "story not found")
	}
	return r.Lookup(ref.Title, ref.Variant)
}

// Group returns the group registered under title.
func (r *Registry) Group(title string) (Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.groups[title]
	if !ok {
		return Group{}, storyerrors.New(storyerrors.CodeNotFound, title, "group not found")
	}
	return cloneGroup(e.group), nil
}

// Groups returns every group sorted by title.
func (r *Registry) Groups() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Group, 0, len(r.groups))
	for _, e := range r.groups {
		out = append(out, cloneGroup(e.group))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Variants returns the variants of a group in insertion order.
func (r *Registry) Variants(title string) ([]Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.groups[title]
	if !ok {
		return nil, storyerrors.New(storyerrors.CodeNotFound, title, "group not found")
	}
	out := make([]Variant, len(e.variants))
	for i, v := range e.variants {
		out[i] = cloneVariant(v)
	}
	return out, nil
}

// Filter returns the groups carrying tag, sorted by title.
func (r *Registry) Filter(tag string) []Group {
	var out []Group
	for _, g := range r.Groups() {
		if g.HasTag(tag) {
			out = append(out, g)
		}
	}
	return out
}

// Stories lists every story: groups by title, variants in insertion order.
func (r *Registry) Stories() []Ref {
	groups := r.Groups()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Ref
	for _, g := range groups {
		for _, v := range r.groups[g.Title].variants {
			out = append(out, r.ids[ID(g.Title, v.Name)])
		}
	}
	return out
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

package story

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
)

// Group is a family of stories sharing one component kind, schema and
// default binder. Schema and Binder may be nil for groups made only of
// explicit render stories.
type Group struct {
	Title       string
	Tags        []string
	Description string
	Schema      *argtypes.Schema
	Binder      components.Binder
}

// HasTag reports whether the group carries tag.
func (g Group) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RenderFunc is a self-contained story render used for composite and demo
// stories. It takes no arguments and is exempt from schema validation.
type RenderFunc func() (components.Fragment, error)

// Variant is one named story of a group. When Render is nil the story is
// bound to the group's binder with Args as overrides.
type Variant struct {
	Name        string
	Description string
	Args        argtypes.Args
	Render      RenderFunc
}

// Explicit reports whether the variant bypasses the group binder.
func (v Variant) Explicit() bool {
	return v.Render != nil
}

// Ref identifies a registered story.
type Ref struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Variant string `json:"variant"`
	Name    string `json:"name"`
}

func cloneGroup(g Group) Group {
	g.Tags = append([]string(nil), g.Tags...)
	return g
}

func cloneVariant(v Variant) Variant {
	if v.Args != nil {
		v.Args = v.Args.Clone()
	}
	return v
}

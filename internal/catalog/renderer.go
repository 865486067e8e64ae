// Package catalog is the single entry point that turns a (group, variant)
// pair into markup: it merges binder defaults with the variant's args,
// validates them against the group schema and invokes the binder.
package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Result is a rendered story with what a control panel needs to edit it.
type Result struct {
	Ref      story.Ref
	Fragment components.Fragment
	Args     argtypes.Args
	Schema   *argtypes.Schema
	Explicit bool
}

// Outcome is one entry of RenderAll. Exactly one of Result and Err is set.
type Outcome struct {
	Ref    story.Ref
	Result *Result
	Err    error
}

// Renderer reads a fully built registry. It never mutates it.
type Renderer struct {
	registry     *story.Registry
	presentation *presentation.Context
	logger       *logger.Logger
}

// New builds a renderer. A nil presentation context uses presentation.Default().
func New(reg *story.Registry, pres *presentation.Context, log *logger.Logger) *Renderer {
	if pres == nil {
		pres = presentation.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Renderer{registry: reg, presentation: pres, logger: log}
}

// Registry exposes the registry being rendered.
func (r *Renderer) Registry() *story.Registry {
	return r.registry
}

// Presentation exposes the presentation context previews are decorated with.
func (r *Renderer) Presentation() *presentation.Context {
	return r.presentation
}

// RenderStory renders a story with its declared args.
func (r *Renderer) RenderStory(title, variant string) (Result, error) {
	return r.RenderWithArgs(title, variant, nil)
}

// RenderWithArgs renders a story with control-panel overrides layered on top
// of the variant's args. Explicit stories accept no overrides.
func (r *Renderer) RenderWithArgs(title, variant string, overrides argtypes.Args) (Result, error) {
	g, v, err := r.registry.Lookup(title, variant)
	if err != nil {
		r.logger.Warn("story lookup failed", "title", title, "variant", variant, "code", string(storyerrors.CodeOf(err)), "key", storyerrors.KeyOf(err))
		return Result{}, err
	}

	res, err := r.render(g, v, overrides)
	if err != nil {
		r.logger.Warn("story render failed", "id", story.ID(title, variant), "code", string(storyerrors.CodeOf(err)), "key", storyerrors.KeyOf(err), "error", err.Error())
		return Result{}, err
	}
	r.logger.Debug("story rendered", "id", res.Ref.ID, "explicit", res.Explicit, "bytes", len(res.Fragment))
	return res, nil
}

// RenderID renders the story with the given id.
func (r *Renderer) RenderID(id string, overrides argtypes.Args) (Result, error) {
	g, v, err := r.registry.ByID(id)
	if err != nil {
		return Result{}, err
	}
	return r.RenderWithArgs(g.Title, v.Name, overrides)
}

// Preview renders a story and applies the presentation decorators.
func (r *Renderer) Preview(title, variant string, overrides argtypes.Args) (Result, error) {
	res, err := r.RenderWithArgs(title, variant, overrides)
	if err != nil {
		return Result{}, err
	}
	res.Fragment = r.presentation.Apply(res.Fragment)
	return res, nil
}

// PreviewID is Preview addressed by story id.
func (r *Renderer) PreviewID(id string, overrides argtypes.Args) (Result, error) {
	g, v, err := r.registry.ByID(id)
	if err != nil {
		return Result{}, err
	}
	return r.Preview(g.Title, v.Name, overrides)
}

// RenderAll renders every story in catalog order. A failing story is
// reported in its Outcome and does not affect the others.
func (r *Renderer) RenderAll() []Outcome {
	refs := r.registry.Stories()
	out := make([]Outcome, 0, len(refs))
	failed := 0
	for _, ref := range refs {
		res, err := r.RenderStory(ref.Title, ref.Variant)
		if err != nil {
			failed++
			out = append(out, Outcome{Ref: ref, Err: err})
			continue
		}
		out = append(out, Outcome{Ref: ref, Result: &res})
	}
	r.logger.Info("catalog rendered", "stories", len(refs), "failed", failed)
	return out
}

func (r *Renderer) render(g story.Group, v story.Variant, overrides argtypes.Args) (res Result, err error) {
	ref := story.Ref{ID: story.ID(g.Title, v.Name), Title: g.Title, Variant: v.Name, Name: story.DisplayName(v.Name)}

	defer func() {
		if p := recover(); p != nil {
			res = Result{}
			err = storyerrors.Wrap(storyerrors.CodeRenderFailed, ref.ID, fmt.Errorf("panic: %v", p))
		}
	}()

	if v.Explicit() {
		if len(overrides) > 0 {
			name := overrides.Keys()[0]
			return Result{}, storyerrors.New(storyerrors.CodeUnknownArgument, name, "story "+ref.ID+" renders without arguments")
		}
		frag, err := v.Render()
		if err != nil {
			return Result{}, renderFailure(ref, err)
		}
		return Result{Ref: ref, Fragment: frag, Args: argtypes.Args{}, Schema: g.Schema, Explicit: true}, nil
	}

	merged := argtypes.Merge(argtypes.Merge(g.Binder.Defaults(), v.Args), overrides)
	resolved, err := argtypes.Validate(g.Schema, merged)
	if err != nil {
		return Result{}, err
	}

	frag, err := g.Binder.Render(resolved)
	if err != nil {
		return Result{}, renderFailure(ref, err)
	}
	return Result{Ref: ref, Fragment: frag, Args: resolved, Schema: g.Schema}, nil
}

// renderFailure keeps catalog errors intact and files anything else under
// RenderFailed keyed by the story id.
func renderFailure(ref story.Ref, err error) error {
	if storyerrors.CodeOf(err) != "" {
		return err
	}
	return storyerrors.Wrap(storyerrors.CodeRenderFailed, ref.ID, err)
}

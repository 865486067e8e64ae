// Package presentation holds the process-wide preview state: the background
// presets, the active background and the ordered decorator chain applied to
// every rendered story.
package presentation

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Background is a named preview background preset.
type Background struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// State is what a decorator may observe. It never identifies the story.
type State struct {
	Background Background
}

// Decorator wraps an already decorated fragment.
type Decorator func(components.Fragment, State) components.Fragment

// Compose chains decorators so that each wraps the output of the previous one.
func Compose(decorators ...Decorator) Decorator {
	chain := append([]Decorator(nil), decorators...)
	return func(f components.Fragment, s State) components.Fragment {
		for _, d := range chain {
			f = d(f, s)
		}
		return f
	}
}

// Context moves from unconfigured to configured exactly once.
type Context struct {
	mu          sync.RWMutex
	configured  bool
	backgrounds []Background
	active      int
	decorators  []Decorator
	logger      *logger.Logger
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the process-wide context.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = New(nil)
	})
	return defaultCtx
}

// New returns an unconfigured context, for callers that need isolation from
// the process-wide one.
func New(log *logger.Logger) *Context {
	if log == nil {
		log = logger.Nop()
	}
	return &Context{logger: log}
}

// SetLogger replaces the context's logger.
func (c *Context) SetLogger(log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	c.mu.Lock()
	c.logger = log
	c.mu.Unlock()
}

// Configure installs the presets, the initial background and the decorator
// chain. It succeeds once; later calls fail with AlreadyConfigured. A call
// rejected for invalid input leaves the context unconfigured.
func (c *Context) Configure(presets []Background, defaultPreset string, decorators ...Decorator) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.configured {
		return storyerrors.New(storyerrors.CodeAlreadyConfigured, "presentation", "presentation context is already configured")
	}
	if len(presets) == 0 {
		return storyerrors.NewValidationError("backgrounds", "at least one background preset is required", nil)
	}

	seen := make(map[string]struct{}, len(presets))
	names := make([]string, 0, len(presets))
	for i, p := range presets {
		if strings.TrimSpace(p.Name) == "" {
			return storyerrors.NewValidationError("backgrounds", "background preset name must not be empty", nil)
		}
		if _, dup := seen[p.Name]; dup {
			return storyerrors.NewValidationError("backgrounds", "duplicate background preset "+p.Name, nil)
		}
		seen[p.Name] = struct{}{}
		names = append(names, presets[i].Name)
	}

	active := indexOf(presets, defaultPreset)
	if active < 0 {
		return storyerrors.NewWithDomain(storyerrors.CodeUnknownPreset, defaultPreset, "default background is not a preset", names)
	}

	for _, d := range decorators {
		if d == nil {
			return storyerrors.NewValidationError("decorators", "decorator must not be nil", nil)
		}
	}

	c.backgrounds = append([]Background(nil), presets...)
	c.active = active
	c.decorators = append([]Decorator(nil), decorators...)
	c.configured = true
	c.logger.Debug("presentation context configured", "backgrounds", strings.Join(names, ","), "default", defaultPreset, "decorators", len(decorators))
	return nil
}

// Configured reports whether Configure has succeeded.
func (c *Context) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configured
}

// SetActiveBackground selects a preset by name.
func (c *Context) SetActiveBackground(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.backgrounds, name)
	if i < 0 {
		return storyerrors.NewWithDomain(storyerrors.CodeUnknownPreset, name, "background preset is not configured", c.namesLocked())
	}
	c.active = i
	c.logger.Debug("active background changed", "background", name)
	return nil
}

// CycleBackground activates the preset after the current one and returns it.
func (c *Context) CycleBackground() (Background, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.configured {
		return Background{}, storyerrors.New(storyerrors.CodeUnknownPreset, "", "presentation context is not configured")
	}
	c.active = (c.active + 1) % len(c.backgrounds)
	return c.backgrounds[c.active], nil
}

// ActiveBackground returns the active preset, or the zero value when unconfigured.
func (c *Context) ActiveBackground() Background {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.configured {
		return Background{}
	}
	return c.backgrounds[c.active]
}

// Backgrounds returns the presets in declaration order.
func (c *Context) Backgrounds() []Background {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Background(nil), c.backgrounds...)
}

// State snapshots what decorators observe.
func (c *Context) State() State {
	return State{Background: c.ActiveBackground()}
}

// Apply runs the decorator chain over f in registration order. An
// unconfigured context returns f unchanged.
func (c *Context) Apply(f components.Fragment) components.Fragment {
	c.mu.RLock()
	if !c.configured {
		c.mu.RUnlock()
		return f
	}
	chain := Compose(c.decorators...)
	state := State{Background: c.backgrounds[c.active]}
	c.mu.RUnlock()

	return chain(f, state)
}

func (c *Context) namesLocked() []string {
	names := make([]string, len(c.backgrounds))
	for i, b := range c.backgrounds {
		names[i] = b.Name
	}
	return names
}

// reset returns the context to the unconfigured state. Tests only.
func (c *Context) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configured = false
	c.backgrounds = nil
	c.active = 0
	c.decorators = nil
}

func indexOf(presets []Background, name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

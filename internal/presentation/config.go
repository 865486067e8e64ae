package presentation

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/config"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

// ConfigureFrom configures c from a loaded config file. Preset values that
// reference tokens are checked against r.
func (c *Context) ConfigureFrom(cfg *config.Config, r *tokens.Resolver) error {
	if cfg == nil {
		cfg = config.Default()
	}

	presets := make([]Background, len(cfg.Backgrounds))
	for i, bg := range cfg.Backgrounds {
		presets[i] = Background{Name: bg.Name, Value: bg.Value}
		if r == nil {
			continue
		}
		value, err := r.Color(bg.Value)
		if err != nil {
			return err
		}
		presets[i].Value = value
	}

	decorators, err := Builtins(cfg.Decorators, r)
	if err != nil {
		return err
	}
	return c.Configure(presets, cfg.DefaultBackground, decorators...)
}

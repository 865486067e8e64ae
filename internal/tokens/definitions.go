package tokens

// Definitions is the design-token source: a raw layer of concrete values and
// a semantic layer of aliases pointing at raw entries.
type Definitions struct {
	Palette map[string]string   `yaml:"palette,omitempty" toml:"palette"`
	Aliases map[string]string   `yaml:"aliases,omitempty" toml:"aliases"`
	Fonts   map[string][]string `yaml:"fonts,omitempty" toml:"fonts"`
	Spacing map[string]string   `yaml:"spacing,omitempty" toml:"spacing"`
	Sizes   map[string]string   `yaml:"sizes,omitempty" toml:"sizes"`
	Radii   map[string]string   `yaml:"radii,omitempty" toml:"radii"`
	Shadows map[string]string   `yaml:"shadows,omitempty" toml:"shadows"`
}

// NordDefinitions returns the Nord palette with the catalog's semantic roles.
func NordDefinitions() Definitions {
	return Definitions{
		Palette: map[string]string{
			// Polar Night
			"nord0": "#2E3440",
			"nord1": "#3B4252",
			"nord2": "#434C5E",
			"nord3": "#4C566A",
			// Snow Storm
			"nord4": "#D8DEE9",
			"nord5": "#E5E9F0",
			"nord6": "#ECEFF4",
			// Frost
			"nord7":  "#8FBCBB",
			"nord8":  "#88C0D0",
			"nord9":  "#81A1C1",
			"nord10": "#5E81AC",
			// Aurora
			"nord11": "#BF616A",
			"nord12": "#D08770",
			"nord13": "#EBCB8B",
			"nord14": "#A3BE8C",
			"nord15": "#B48EAD",
			"white":  "#FFFFFF",
		},
		Aliases: map[string]string{
			"primary":       "nord10",
			"primary-hover": "nord9",
			"secondary":     "nord8",
			"success":       "nord14",
			"warning":       "nord13",
			"error":         "nord11",
			"info":          "nord7",
			"background":    "nord6",
			"surface":       "nord5",
			"card":          "white",
			"text":          "nord0",
			"text-muted":    "nord3",
			"border":        "nord4",
		},
		Fonts: map[string][]string{
			"font-sans": {"Inter", "-apple-system", "BlinkMacSystemFont", `"Segoe UI"`, "Roboto", `"Helvetica Neue"`, "Arial", "sans-serif"},
			"font-mono": {`"Fira Code"`, `"SF Mono"`, "Monaco", "Consolas", "monospace"},
		},
		Spacing: map[string]string{
			"space-1": "0.25rem",
			"space-2": "0.5rem",
			"space-3": "0.75rem",
			"space-4": "1rem",
			"space-6": "1.5rem",
		},
		Sizes: map[string]string{
			"width-mobile":  "375px",
			"width-card":    "400px",
			"width-card-lg": "500px",
			"tile-min":      "120px",
			"column-min":    "300px",
			"textarea-min":  "120px",
			"textarea-sm":   "100px",
		},
		Radii: map[string]string{
			"radius":    "0.375rem",
			"radius-sm": "0.25rem",
			"radius-md": "0.5rem",
			"radius-lg": "0.75rem",
		},
		Shadows: map[string]string{
			"shadow-sm": "0 1px 2px 0 rgba(46, 52, 64, 0.05)",
			"shadow":    "0 2px 4px 0 rgba(46, 52, 64, 0.1)",
			"shadow-md": "0 4px 6px -1px rgba(46, 52, 64, 0.1), 0 2px 4px -1px rgba(46, 52, 64, 0.06)",
			"shadow-lg": "0 10px 15px -3px rgba(46, 52, 64, 0.1), 0 4px 6px -2px rgba(46, 52, 64, 0.05)",
		},
	}
}

// Merge overlays o onto d. Entries in o replace entries of the same name.
func (d Definitions) Merge(o Definitions) Definitions {
	return Definitions{
		Palette: mergeMap(d.Palette, o.Palette),
		Aliases: mergeMap(d.Aliases, o.Aliases),
		Fonts:   mergeMap(d.Fonts, o.Fonts),
		Spacing: mergeMap(d.Spacing, o.Spacing),
		Sizes:   mergeMap(d.Sizes, o.Sizes),
		Radii:   mergeMap(d.Radii, o.Radii),
		Shadows: mergeMap(d.Shadows, o.Shadows),
	}
}

func mergeMap[V any](base, overlay map[string]V) map[string]V {
	out := make(map[string]V, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

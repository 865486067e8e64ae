package tokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// LoadFile reads token overrides from a YAML or TOML file and merges them
// over the Nord defaults.
func LoadFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, storyerrors.NewParseError(path, 0, err)
	}

	var overlay Definitions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, storyerrors.NewParseError(path, 0, err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &overlay)
		if err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, storyerrors.NewParseError(path, line, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, storyerrors.NewParseError(path, 0, fmt.Errorf("unknown keys: %v", undecoded))
		}
	default:
		return nil, storyerrors.NewParseError(path, 0, fmt.Errorf("unsupported token file extension %q", filepath.Ext(path)))
	}

	return NewResolver(NordDefinitions().Merge(overlay))
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "storyshelf.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, applies defaults, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, storyerrors.NewParseError(path, 0, err)
	}

	return parseBytes(path, data)
}

// Load reads path when it exists. An empty path falls back to DefaultFileName,
// and a missing default file yields Default().
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, storyerrors.NewParseError(path, 0, err)
	}

	return parseBytes(path, data)
}

func parseBytes(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, storyerrors.NewParseError(path, extractLine(err), err)
	}

	cfg.applyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

package config

// Config is the optional storyshelf.yaml document. Every field has a default,
// so a missing file yields Default().
type Config struct {
	LogLevel          string         `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Backgrounds       []Background   `yaml:"backgrounds,omitempty" validate:"omitempty,min=1,dive"`
	DefaultBackground string         `yaml:"default_background,omitempty" validate:"omitempty,preset_name"`
	Decorators        []string       `yaml:"decorators,omitempty" validate:"omitempty,dive,oneof=padded centered background stylesheet"`
	TokensFile        string         `yaml:"tokens_file,omitempty"`
	OutputDir         string         `yaml:"output_dir,omitempty"`
	Server            ServerSettings `yaml:"server,omitempty"`
}

// Background is a named preview background preset.
type Background struct {
	Name  string `yaml:"name" validate:"required,preset_name"`
	Value string `yaml:"value" validate:"required,css_color"`
}

// ServerSettings configures the preview server.
type ServerSettings struct {
	Addr string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is present. The
// backgrounds mirror the catalog's original preview presets.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Backgrounds: []Background{
			{Name: "nord", Value: "var(--nord6)"},
			{Name: "dark", Value: "var(--nord0)"},
			{Name: "white", Value: "var(--white)"},
		},
		DefaultBackground: "nord",
		Decorators:        []string{"stylesheet", "background", "padded"},
		OutputDir:         "storyshelf-static",
		Server:            ServerSettings{Addr: "127.0.0.1:6006"},
	}
}

// BackgroundNames returns preset names in declaration order.
func (c *Config) BackgroundNames() []string {
	names := make([]string, 0, len(c.Backgrounds))
	for _, bg := range c.Backgrounds {
		names = append(names, bg.Name)
	}
	return names
}

// applyDefaults fills unset fields from Default().
func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Backgrounds) == 0 {
		c.Backgrounds = def.Backgrounds
	}
	if c.DefaultBackground == "" {
		c.DefaultBackground = c.Backgrounds[0].Name
	}
	if c.Decorators == nil {
		c.Decorators = def.Decorators
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
}

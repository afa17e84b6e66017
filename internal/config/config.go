package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the browsed directory, display settings, and the behaviour
// of the fake data source used for demos and tests.
type Config struct {
	Browser struct {
		Root       string   `yaml:"root"`        // Directory opened at startup
		ShowHidden bool     `yaml:"show_hidden"` // Show dotfiles
		Ignore     []string `yaml:"ignore"`      // Glob patterns for entries to hide
		Watch      bool     `yaml:"watch"`       // Invalidate folder caches on filesystem events
	} `yaml:"browser"`
	Display struct {
		PlaceholderRows int `yaml:"placeholder_rows"` // Filler rows shown while a folder loads
		Width           int `yaml:"width"`            // Window width (GUI)
		Height          int `yaml:"height"`           // Window height (GUI)
	} `yaml:"display"`
	FakeSource struct {
		DelayMS int      `yaml:"delay_ms"` // Simulated fetch latency
		FailIDs []string `yaml:"fail_ids"` // Node IDs whose fetch always fails
	} `yaml:"fake_source"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light)
		Folder   string `yaml:"folder"`   // Folder row color
		File     string `yaml:"file"`     // File row color
		Error    string `yaml:"error"`    // Error indicator color
		Selected string `yaml:"selected"` // Selected row color
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/lazytree/config.yaml). Missing file means defaults.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "lazytree", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Browser.Root != "" {
		cfg.Browser.Root = tempCfg.Browser.Root
	}
	cfg.Browser.ShowHidden = tempCfg.Browser.ShowHidden
	cfg.Browser.Watch = tempCfg.Browser.Watch
	if len(tempCfg.Browser.Ignore) > 0 {
		cfg.Browser.Ignore = tempCfg.Browser.Ignore
	}

	if tempCfg.Display.PlaceholderRows > 0 {
		cfg.Display.PlaceholderRows = tempCfg.Display.PlaceholderRows
	}
	if tempCfg.Display.Width > 0 {
		cfg.Display.Width = tempCfg.Display.Width
	}
	if tempCfg.Display.Height > 0 {
		cfg.Display.Height = tempCfg.Display.Height
	}

	if tempCfg.FakeSource.DelayMS > 0 {
		cfg.FakeSource.DelayMS = tempCfg.FakeSource.DelayMS
	}
	if len(tempCfg.FakeSource.FailIDs) > 0 {
		cfg.FakeSource.FailIDs = tempCfg.FakeSource.FailIDs
	}

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	if tempCfg.Theme.Folder != "" {
		cfg.Theme.Folder = tempCfg.Theme.Folder
	}
	if tempCfg.Theme.File != "" {
		cfg.Theme.File = tempCfg.Theme.File
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Theme.Selected != "" {
		cfg.Theme.Selected = tempCfg.Theme.Selected
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the built-in defaults
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Browser.Root = "."
	cfg.Browser.Ignore = []string{".git", "node_modules"}
	cfg.Display.PlaceholderRows = 3
	cfg.Display.Width = 700
	cfg.Display.Height = 500
	cfg.FakeSource.DelayMS = 1500
	cfg.ApplyTheme("default")
	return cfg
}

// New returns a configuration with defaults applied
func New() *Config {
	return defaultConfig()
}

// SaveConfig writes the configuration to the given path, creating parent
// directories as needed. An empty path means the default location.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "lazytree", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	if c.Display.PlaceholderRows < 0 {
		return fmt.Errorf("placeholder_rows must not be negative")
	}
	if c.FakeSource.DelayMS < 0 {
		return fmt.Errorf("fake_source delay_ms must not be negative")
	}
	return nil
}

// themes maps theme names to row colors (folder, file, error, selected)
var themes = map[string][4]string{
	"default": {"#81A1C1", "#D8DEE9", "#BF616A", "#73F59F"},
	"dark":    {"#5E81AC", "#ABB2BF", "#E06C75", "#98C379"},
	"light":   {"#2E5C8A", "#333333", "#B00020", "#1E7A3C"},
}

// ApplyTheme sets the color fields from a named theme. Unknown names
// fall back to the default theme.
func (c *Config) ApplyTheme(name string) {
	colors, ok := themes[name]
	if !ok {
		name = "default"
		colors = themes[name]
	}
	c.Theme.Name = name
	c.Theme.Folder = colors[0]
	c.Theme.File = colors[1]
	c.Theme.Error = colors[2]
	c.Theme.Selected = colors[3]
}

// ListThemes returns the available theme names
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

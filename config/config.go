// Package config reads and writes the quire configuration file.
//
// The file is YAML:
//
//	highlight: true
//	log:
//	  level: info
//	  file: /tmp/quire.log
//	theme:
//	  function: "#ff8700"
//	  "function.macro": "#ff0000"
//	language_server:
//	  rust:
//	    command: [rust-analyzer]
//
// Without log.level the QUIRE_LOG environment variable sets the level.
// Theme entries override the built-in highlight colors. Dotted capture names
// can be quoted or written as nested maps.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/syntax"
	"github.com/iw2rmb/quire/ui"
)

// ErrEmptyCommand is returned for a language server without a program name.
var ErrEmptyCommand = errors.New("command needs at least a program name")

// keyDelimiter separates nested viper keys. The default "." would split
// dotted capture names such as "function.macro".
const keyDelimiter = "::"

// Config holds every configuration option.
type Config struct {
	// Highlight enables syntax highlighting for known languages.
	Highlight bool `mapstructure:"highlight" yaml:"highlight"`

	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Theme maps capture names to "#rrggbb" colors.
	Theme map[string]any `mapstructure:"theme" yaml:"theme,omitempty"`

	// LanguageServers is keyed by syntax name.
	LanguageServers map[string]LanguageServer `mapstructure:"language_server" yaml:"language_server,omitempty"`
}

// LogConfig controls the log file. The terminal belongs to the editor, so
// nothing is logged unless File is set.
type LogConfig struct {
	// Level is empty to use the QUIRE_LOG environment variable.
	Level string `mapstructure:"level" yaml:"level,omitempty"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// LanguageServer describes how to start a language server.
type LanguageServer struct {
	Command []string `mapstructure:"command" yaml:"command,flow"`
}

// Program splits the command into the program and its arguments.
func (l LanguageServer) Program() (string, []string, error) {
	if len(l.Command) == 0 || l.Command[0] == "" {
		return "", nil, ErrEmptyCommand
	}
	return l.Command[0], l.Command[1:], nil
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	theme := highlight.DefaultTheme()
	colors := make(map[string]any)
	for _, name := range theme.Names() {
		c, _, _ := theme.Resolve(name)
		colors[name] = c.String()
	}

	return Config{
		Highlight: true,
		Theme:     colors,
		LanguageServers: map[string]LanguageServer{
			syntax.Rust.String():       {Command: []string{"rust-analyzer"}},
			syntax.Go.String():         {Command: []string{"gopls"}},
			syntax.JavaScript.String(): {Command: []string{"typescript-language-server", "--stdio"}},
		},
	}
}

// Path returns the default location of the configuration file, inside
// $XDG_CONFIG_HOME or ~/.config.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quire", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "quire", "config.yaml"), nil
}

// Read loads the configuration at path on top of the defaults. A missing
// file is not an error.
func Read(path string) (Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	logger := logging.Default()
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		logger.Debug("no config file, using defaults", logging.FieldPath, path)
	} else {
		logger.Debug("config loaded", logging.FieldPath, path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("highlight", d.Highlight)
	for name, server := range d.LanguageServers {
		v.SetDefault("language_server"+keyDelimiter+name+keyDelimiter+"command", server.Command)
	}
}

// Validate reports the first problem in c.
func (c Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(c.LanguageServers)) {
		if _, err := syntax.Parse(name); err != nil {
			return fmt.Errorf("language_server.%s: %w", name, err)
		}
		if _, _, err := c.LanguageServers[name].Program(); err != nil {
			return fmt.Errorf("language_server.%s: %w", name, err)
		}
	}
	return nil
}

// Colors returns the theme overrides with their colors parsed.
func (c Config) Colors() (map[string]ui.Color, error) {
	flat := make(map[string]string)
	flatten("", c.Theme, flat)

	colors := make(map[string]ui.Color, len(flat))
	for name, hex := range flat {
		parsed, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme.%s: %w", name, err)
		}
		r, g, b := parsed.RGB255()
		colors[name] = ui.NewColor(r, g, b)
	}
	return colors, nil
}

// HighlightTheme returns the built-in theme with the configured overrides
// applied.
func (c Config) HighlightTheme() (*highlight.Theme, error) {
	colors, err := c.Colors()
	if err != nil {
		return nil, err
	}
	theme := highlight.DefaultTheme()
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		theme = theme.With(name, colors[name])
	}
	return theme, nil
}

// LanguageServer returns the configured server for s.
func (c Config) LanguageServer(s syntax.Syntax) (LanguageServer, bool) {
	for name, server := range c.LanguageServers {
		if parsed, err := syntax.Parse(name); err == nil && parsed == s {
			return server, true
		}
	}
	return LanguageServer{}, false
}

// flatten turns nested theme maps into dotted names.
func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flatten(key, converted, out)
		}
	}
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/muurk/clickme/internal/store"
)

// Output formats for the show command.
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
)

// Formats lists the valid show formats.
var Formats = []string{FormatDetailed, FormatCompact, FormatJSON}

// Registry represents the entire preferences file.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	StoreBackend string       `yaml:"store_backend"`      // file, sqlite or memory
	DataDir      string       `yaml:"data_dir,omitempty"` // Empty means the OS data directory
	LogLevel     string       `yaml:"log_level,omitempty"`
	ShowFormat   string       `yaml:"show_format"` // detailed, compact or json
	Render       *RenderPrefs `yaml:"render,omitempty"`
}

// RenderPrefs holds defaults for the render command.
type RenderPrefs struct {
	Menu        bool   `yaml:"menu"`
	Transparent bool   `yaml:"transparent"`
	Output      string `yaml:"output,omitempty"` // Empty means stdout
}

// Env holds the environment overrides, read with the CLICKME_ prefix.
type Env struct {
	StoreBackend string `envconfig:"STORE_BACKEND"`
	DataDir      string `envconfig:"DATA_DIR"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: DefaultPreferences(),
	}
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		StoreBackend: store.KindFile,
		ShowFormat:   FormatDetailed,
		Render:       &RenderPrefs{},
	}
}

// LoadEnv reads CLICKME_* environment overrides.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(appName, &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

// ApplyEnv returns a copy of the preferences with non-empty environment
// values applied.
func (p *Preferences) ApplyEnv(env Env) *Preferences {
	out := *p
	if p.Render != nil {
		render := *p.Render
		out.Render = &render
	} else {
		out.Render = &RenderPrefs{}
	}

	if env.StoreBackend != "" {
		out.StoreBackend = env.StoreBackend
	}
	if env.DataDir != "" {
		out.DataDir = env.DataDir
	}
	if env.LogLevel != "" {
		out.LogLevel = env.LogLevel
	}
	return &out
}

// ResolveDataDir returns the configured data directory, or the OS default.
func (p *Preferences) ResolveDataDir() (string, error) {
	if p.DataDir != "" {
		return p.DataDir, nil
	}
	return GetDataDir()
}

// Validate checks enum-valued preferences.
func (p *Preferences) Validate() error {
	if !oneOf(p.StoreBackend, store.Kinds) {
		return fmt.Errorf("store_backend must be one of %v, got %q", store.Kinds, p.StoreBackend)
	}
	if !oneOf(p.ShowFormat, Formats) {
		return fmt.Errorf("show_format must be one of %v, got %q", Formats, p.ShowFormat)
	}
	return nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}

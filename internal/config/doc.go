// Package config provides user preferences for clickme.
//
// Preferences live in a YAML file that follows OS-specific conventions:
//   - Linux: $XDG_CONFIG_HOME/clickme/config.yaml or $HOME/.config/clickme/config.yaml
//   - macOS: $HOME/.config/clickme/config.yaml
//   - Windows: %LOCALAPPDATA%\clickme\config.yaml
//
// The demonstration settings themselves are not stored here; they belong to
// the store package. This file only decides how clickme runs: which store
// backend to use, where its data lives, the log level and render defaults.
//
// # Precedence
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults (NewRegistry)
//  2. The preferences file
//  3. Environment variables CLICKME_STORE_BACKEND, CLICKME_DATA_DIR and
//     CLICKME_LOG_LEVEL (LoadEnv, Preferences.ApplyEnv)
//  4. Command-line flags
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	env, err := config.LoadEnv()
//	if err != nil {
//	    return err
//	}
//	prefs := registry.Preferences.ApplyEnv(env)
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config

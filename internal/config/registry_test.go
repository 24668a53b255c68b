package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "clickme") {
		t.Errorf("GetConfigDir() = %v, should contain 'clickme'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG variables only apply on Linux")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if configDir != filepath.Join(tmp, "clickme") {
		t.Errorf("GetConfigDir() = %s", configDir)
	}

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dataDir != filepath.Join(tmp, "data", "clickme") {
		t.Errorf("GetDataDir() = %s", dataDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.StoreBackend != "file" {
		t.Errorf("StoreBackend = %v, want file", reg.Preferences.StoreBackend)
	}
	if reg.Preferences.ShowFormat != FormatDetailed {
		t.Errorf("ShowFormat = %v, want detailed", reg.Preferences.ShowFormat)
	}
	if err := reg.Preferences.Validate(); err != nil {
		t.Errorf("default preferences invalid: %v", err)
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Preferences.StoreBackend = "sqlite"
	reg.Preferences.DataDir = "/var/lib/clickme"
	reg.Preferences.Render.Menu = true

	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	loaded, err := LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if loaded.Preferences.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %v", loaded.Preferences.StoreBackend)
	}
	if loaded.Preferences.DataDir != "/var/lib/clickme" {
		t.Errorf("DataDir = %v", loaded.Preferences.DataDir)
	}
	if !loaded.Preferences.Render.Menu {
		t.Error("Render.Menu not persisted")
	}
}

func TestLoadRegistryFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, reg *Registry)
	}{
		{
			name:    "partial file gets defaults",
			content: "version: 1\npreferences:\n  log_level: debug\n",
			check: func(t *testing.T, reg *Registry) {
				if reg.Preferences.LogLevel != "debug" {
					t.Errorf("LogLevel = %v", reg.Preferences.LogLevel)
				}
				if reg.Preferences.StoreBackend != "file" || reg.Preferences.ShowFormat != FormatDetailed {
					t.Errorf("defaults not filled: %+v", reg.Preferences)
				}
				if reg.Preferences.Render == nil {
					t.Error("Render should be filled")
				}
			},
		},
		{
			name:    "no preferences",
			content: "version: 1\n",
			check: func(t *testing.T, reg *Registry) {
				if reg.Preferences == nil {
					t.Error("Preferences should be filled")
				}
			},
		},
		{name: "wrong version", content: "version: 2\n", wantErr: true},
		{name: "bad backend", content: "version: 1\npreferences:\n  store_backend: redis\n", wantErr: true},
		{name: "bad format", content: "version: 1\npreferences:\n  show_format: xml\n", wantErr: true},
		{name: "malformed", content: "version: [1\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			reg, err := LoadRegistryFrom(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadRegistryFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, reg)
			}
		})
	}
}

func TestLoadRegistryFromMissingFile(t *testing.T) {
	reg, err := LoadRegistryFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.Version != 1 || reg.Preferences == nil {
		t.Errorf("expected default registry, got %+v", reg)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG variables only apply on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("second CreateDefaultConfig() without force should fail")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CLICKME_STORE_BACKEND", "memory")
	t.Setenv("CLICKME_DATA_DIR", "/tmp/clickme-data")
	t.Setenv("CLICKME_LOG_LEVEL", "warn")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if env.StoreBackend != "memory" || env.DataDir != "/tmp/clickme-data" || env.LogLevel != "warn" {
		t.Errorf("LoadEnv() = %+v", env)
	}
}

func TestApplyEnv(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.DataDir = "/from/file"
	prefs.LogLevel = "info"

	got := prefs.ApplyEnv(Env{StoreBackend: "sqlite"})
	if got.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %v", got.StoreBackend)
	}
	if got.DataDir != "/from/file" || got.LogLevel != "info" {
		t.Errorf("empty env values should not override: %+v", got)
	}
	if prefs.StoreBackend != "file" {
		t.Error("ApplyEnv modified the receiver")
	}

	got.Render.Menu = true
	if prefs.Render.Menu {
		t.Error("ApplyEnv shares Render with the receiver")
	}
}

func TestResolveDataDir(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.DataDir = "/explicit"

	dir, err := prefs.ResolveDataDir()
	if err != nil || dir != "/explicit" {
		t.Errorf("ResolveDataDir() = %v, %v", dir, err)
	}

	prefs.DataDir = ""
	dir, err = prefs.ResolveDataDir()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dir, "clickme") {
		t.Errorf("default data dir %s should contain clickme", dir)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

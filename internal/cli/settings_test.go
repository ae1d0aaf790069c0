package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// isolateHome points $HOME at an empty temp dir so a developer's own config
// file never leaks into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	homedir.Reset()
	return dir
}

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const fileConfig = `provider: fixture
base_url: http://file.example
timeout: 3s
retry_max: 2
group_preview: 5
discard_stale: true
reset_expansion: true
collate_lang: es
log_format: json
metrics:
  enabled: true
  port: "9999"
`

func TestLoadSettingsDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := loadSettings("", nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Provider != "http" || cfg.PlayerAPI.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.PlayerAPI.Timeout != 10*time.Second || cfg.PlayerAPI.RetryMax != 0 {
		t.Fatalf("unexpected transport defaults %+v", cfg.PlayerAPI)
	}
	if cfg.Lookup.GroupPreview != 3 || cfg.Lookup.InitialLimit != 10 || cfg.Lookup.DiscardStale || cfg.Lookup.ResetExpansion {
		t.Fatalf("unexpected lookup defaults %+v", cfg.Lookup)
	}
}

func TestLoadSettingsFileOverridesEnv(t *testing.T) {
	dir := isolateHome(t)
	t.Setenv("PLAYER_API_BASE_URL", "http://env.example")
	t.Setenv("LOOKUP_INITIAL_LIMIT", "7")
	path := writeConfig(t, dir, "custom.yaml", fileConfig)

	cfg, err := loadSettings(path, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.PlayerAPI.BaseURL != "http://file.example" {
		t.Fatalf("expected file base url, got %s", cfg.PlayerAPI.BaseURL)
	}
	if cfg.Lookup.InitialLimit != 7 {
		t.Fatalf("expected env initial limit when file is silent, got %d", cfg.Lookup.InitialLimit)
	}
	if cfg.Provider != "fixture" || cfg.PlayerAPI.Timeout != 3*time.Second || cfg.PlayerAPI.RetryMax != 2 {
		t.Fatalf("unexpected file values %+v", cfg)
	}
	if cfg.Lookup.GroupPreview != 5 || !cfg.Lookup.DiscardStale || !cfg.Lookup.ResetExpansion || cfg.Lookup.CollateLanguage != "es" {
		t.Fatalf("unexpected lookup values %+v", cfg.Lookup)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9999" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected nested values %+v %+v", cfg.Metrics, cfg.Log)
	}
}

func TestLoadSettingsReadsHomeFile(t *testing.T) {
	dir := isolateHome(t)
	writeConfig(t, dir, configName+".yaml", "base_url: http://home.example\n")

	cfg, err := loadSettings("", nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.PlayerAPI.BaseURL != "http://home.example" {
		t.Fatalf("expected home config to apply, got %s", cfg.PlayerAPI.BaseURL)
	}
}

func TestLoadSettingsFlagsWin(t *testing.T) {
	dir := isolateHome(t)
	path := writeConfig(t, dir, "custom.yaml", fileConfig)

	root := NewRootCommand(nil, nil, nil)
	flags := root.PersistentFlags()
	if err := flags.Set("base-url", "http://flag.example"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := flags.Set("loglevel", "debug"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := loadSettings(path, flags)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.PlayerAPI.BaseURL != "http://flag.example" || cfg.Log.Level != "debug" {
		t.Fatalf("expected flags to win, got %s / %s", cfg.PlayerAPI.BaseURL, cfg.Log.Level)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected unset flag not to override file, got %s", cfg.Provider)
	}
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	dir := isolateHome(t)
	if _, err := loadSettings(filepath.Join(dir, "nope.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadSettingsNegativeRetriesClamp(t *testing.T) {
	dir := isolateHome(t)
	path := writeConfig(t, dir, "custom.yaml", "retry_max: -3\n")

	cfg, err := loadSettings(path, nil)
	if err != nil || cfg.PlayerAPI.RetryMax != 0 {
		t.Fatalf("expected retries clamped to 0, got %d (%v)", cfg.PlayerAPI.RetryMax, err)
	}
}

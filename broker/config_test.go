package broker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":5001" {
		t.Errorf("listen: got %q", cfg.Listen)
	}
	if cfg.Source != SourceDocument {
		t.Errorf("source: got %q", cfg.Source)
	}
	if cfg.Feed.TimeoutSec != 8 {
		t.Errorf("feed timeout: got %d", cfg.Feed.TimeoutSec)
	}
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("listen: \":9000\"\nmenus_dir: frommfile\n"), 0o644)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LISTEN", ":7000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":7000" {
		t.Errorf("env override lost: got %q", cfg.Listen)
	}
	if cfg.MenusDir != "frommfile" {
		t.Errorf("yaml value lost: got %q", cfg.MenusDir)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mut    func(*Config)
		wantOK bool
	}{
		{"document ok", func(c *Config) {}, true},
		{"feed without url", func(c *Config) { c.Source = SourceFeed }, false},
		{"feed with url", func(c *Config) { c.Source = SourceFeed; c.Feed.URL = "https://db.example/admin.json" }, true},
		{"bad source", func(c *Config) { c.Source = "pigeon" }, false},
		{"empty menus dir", func(c *Config) { c.MenusDir = "" }, false},
		{"zero upload cap", func(c *Config) { c.MaxUploadMB = 0 }, false},
	}
	for _, tc := range cases {
		cfg := &Config{
			Listen:      ":5001",
			Source:      SourceDocument,
			UploadsDir:  "uploads",
			MenusDir:    "menus",
			MaxUploadMB: 50,
			Feed:        FeedConfig{TimeoutSec: 8},
		}
		tc.mut(cfg)
		err := cfg.Validate()
		if (err == nil) != tc.wantOK {
			t.Errorf("%s: err=%v, wantOK=%v", tc.name, err, tc.wantOK)
		}
	}
}

package menu

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRules_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "trailing_boilerplate:\n  - \"sous vide\"\ndish_keywords:\n  - \"Dagens\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules.DishKeywords) != 1 || rules.DishKeywords[0] != "Dagens" {
		t.Errorf("dish keywords: got %v", rules.DishKeywords)
	}
	if got := rules.Clean("Kylling sous vide"); got != "Kylling" {
		t.Errorf("custom boilerplate not applied: got %q", got)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	// WHAT: A missing rules file is an error; defaults are still returned so
	// callers may choose to continue.
	rules, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(rules.DishKeywords) == 0 {
		t.Error("defaults not returned on error")
	}
}

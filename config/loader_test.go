package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppConfig(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()

	path := writeConfig(t, `
scenarios:
  - name: downtown
    amPath: /data/downtown_am.csv
    pmPath: /data/downtown_pm.csv
    attoutPath: /data/downtown_attout.txt
    outputDir: /data/out/downtown
  - name: uptown
    amPath: /data/uptown_am.csv
    pmPath: /data/uptown_pm.csv
    attoutPath: /data/uptown_attout.txt
    outputDir: /data/out/uptown
`)
	if err := LoadAppConfig(path); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if len(Config.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(Config.Scenarios))
	}

	sc, ok := SelectScenario("uptown")
	if !ok {
		t.Fatal("uptown scenario not found")
	}
	if sc.AMPath != "/data/uptown_am.csv" {
		t.Errorf("AMPath = %q", sc.AMPath)
	}

	// Empty name falls back to the first scenario.
	sc, ok = SelectScenario("")
	if !ok || sc.Name != "downtown" {
		t.Errorf("fallback scenario = %+v, expected downtown", sc)
	}

	if _, ok := SelectScenario("missing"); ok {
		t.Error("unknown scenario name should not resolve")
	}
}

func TestLoadAppConfigValidation(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()

	path := writeConfig(t, `
scenarios:
  - name: incomplete
    amPath: /data/am.csv
`)
	if err := LoadAppConfig(path); err == nil {
		t.Fatal("expected validation error for scenario missing paths")
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

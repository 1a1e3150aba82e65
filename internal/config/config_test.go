package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "dsn: host=localhost user=atelier dbname=atelier\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3050 {
		t.Errorf("Port = %d, want 3050", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.Site.DefaultLocale != "ko" {
		t.Errorf("DefaultLocale = %q, want ko", cfg.Site.DefaultLocale)
	}
	if cfg.Newsletter.BatchSize != 20 {
		t.Errorf("BatchSize = %d, want 20", cfg.Newsletter.BatchSize)
	}
	if cfg.Site.ServerURL != "http://localhost:3050" {
		t.Errorf("ServerURL = %q", cfg.Site.ServerURL)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	path := writeConfig(t, "port: 4000\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing dsn")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "dsn: from-file\nenv: production\n")
	t.Setenv("ATELIER_DSN", "from-env")
	t.Setenv("ATELIER_PORT", "9001")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DSN != "from-env" {
		t.Errorf("DSN = %q, want env override", cfg.DSN)
	}
	if cfg.Port != 9001 {
		t.Errorf("Port = %d, want 9001", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("env: production should not be dev")
	}
}

func TestEnabledAIProvider(t *testing.T) {
	cfg := &AppConfig{AI: AIConfig{Providers: []AIProvider{
		{ID: "a", Enabled: false},
		{ID: "b", Enabled: true},
		{ID: "c", Enabled: true},
	}}}

	if p := cfg.EnabledAIProvider(); p == nil || p.ID != "b" {
		t.Fatalf("EnabledAIProvider() = %+v, want first enabled", p)
	}
	if p := cfg.AIProviderByID("c"); p == nil || p.ID != "c" {
		t.Fatalf("AIProviderByID(c) = %+v", p)
	}
	if p := cfg.AIProviderByID("missing"); p != nil {
		t.Fatalf("AIProviderByID(missing) = %+v, want nil", p)
	}
}

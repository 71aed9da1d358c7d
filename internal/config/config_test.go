package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"itdash/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.Settings.Store != config.StoreJSONFile {
		t.Errorf("expected store %q, got %q", config.StoreJSONFile, cfg.Settings.Store)
	}
	if cfg.Settings.FlashDuration != time.Second || cfg.Settings.AckDelay != time.Second {
		t.Errorf("expected 1s durations, got flash=%v ack=%v", cfg.Settings.FlashDuration, cfg.Settings.AckDelay)
	}
	if cfg.Settings.SyncList != "IT Dashboard" {
		t.Errorf("expected default sync list, got %q", cfg.Settings.SyncList)
	}
	if cfg.DataDir() != filepath.Join(dir, "data") {
		t.Errorf("unexpected data dir %q", cfg.DataDir())
	}
}

func TestNew_LoadsSettings(t *testing.T) {
	dir := t.TempDir()
	yml := "store: sqlite\ndata_dir: state\nflash_duration: 250ms\nack_delay: 2s\nsync_list: Ops\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.Store != config.StoreSQLite {
		t.Errorf("expected sqlite store, got %q", cfg.Settings.Store)
	}
	if cfg.Settings.FlashDuration != 250*time.Millisecond {
		t.Errorf("expected 250ms flash, got %v", cfg.Settings.FlashDuration)
	}
	if cfg.Settings.AckDelay != 2*time.Second {
		t.Errorf("expected 2s ack delay, got %v", cfg.Settings.AckDelay)
	}
	if cfg.Settings.SyncList != "Ops" {
		t.Errorf("expected sync list Ops, got %q", cfg.Settings.SyncList)
	}
	if cfg.DataDir() != filepath.Join(dir, "state") {
		t.Errorf("relative data_dir should resolve against config dir, got %q", cfg.DataDir())
	}
}

func TestNew_UnknownStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store: redis\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	_, err := config.New(dir)
	if err == nil {
		t.Fatal("expected error for unknown store")
	}
	if !strings.Contains(err.Error(), `unknown store "redis"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store: [\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	if _, err := config.New(dir); err == nil {
		t.Fatal("expected error for malformed config.yaml")
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := config.DefaultConfigDir(); got != filepath.Join("/tmp/xdg", "itdash") {
		t.Errorf("unexpected default dir %q", got)
	}
}

func TestTokenHelpers(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if cfg.HasToken() {
		t.Fatal("expected no token")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}
	if !cfg.HasToken() {
		t.Fatal("expected token")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("remove token: %v", err)
	}
	if cfg.HasToken() {
		t.Fatal("expected token removed")
	}
}

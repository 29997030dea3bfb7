package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "pixelveil.yaml", "output_dir: out\nkey_length: 50\nno_record: true\nglob: '**/*.png'\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.OutputDir == nil || *cfg.OutputDir != "out" {
		t.Fatalf("expected output_dir=out, got %#v", cfg.OutputDir)
	}
	if cfg.KeyLength == nil || *cfg.KeyLength != 50 {
		t.Fatalf("expected key_length=50, got %#v", cfg.KeyLength)
	}
	if cfg.NoRecord == nil || *cfg.NoRecord != true {
		t.Fatalf("expected no_record=true")
	}
	if cfg.Glob == nil || *cfg.Glob != "**/*.png" {
		t.Fatalf("expected glob, got %#v", cfg.Glob)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "pixelveil.yaml", "key_length: 1\n")
	writeTemp(t, dir, ".pixelveil.yaml", "key_length: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.KeyLength == nil || *cfg.KeyLength != 7 {
		t.Fatalf("expected key_length=7 from .pixelveil.yaml, got %#v", cfg.KeyLength)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "pixelveil")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("key_max: 199\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.KeyMax == nil || *cfg.KeyMax != 199 {
		t.Fatalf("expected key_max=199 from global config, got %#v", cfg.KeyMax)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

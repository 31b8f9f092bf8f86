package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigFlagWins(t *testing.T) {
	t.Setenv("DOCGRAPH_URL", "http://env:3131")
	flagURL = "http://flag:3131"
	defer func() { flagURL = defaultServerURL }()

	resolveConfig()
	if flagURL != "http://flag:3131" {
		t.Errorf("flag should win: got %q", flagURL)
	}
}

func TestResolveConfigEnvOverridesDefault(t *testing.T) {
	t.Setenv("DOCGRAPH_URL", "http://env:3131")
	flagURL = defaultServerURL
	defer func() { flagURL = defaultServerURL }()

	resolveConfig()
	if flagURL != "http://env:3131" {
		t.Errorf("env should override default: got %q", flagURL)
	}
}

func TestResolveConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DOCGRAPH_URL", "")
	flagURL = defaultServerURL
	defer func() { flagURL = defaultServerURL }()

	dir := filepath.Join(home, ".docgraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := []byte("url: http://file:3131\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), cfg, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	resolveConfig()
	if flagURL != "http://file:3131" {
		t.Errorf("config file should fill default: got %q", flagURL)
	}
}

func TestResolveConfigMissingFileKeepsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCGRAPH_URL", "")
	flagURL = defaultServerURL
	defer func() { flagURL = defaultServerURL }()

	resolveConfig()
	if flagURL != defaultServerURL {
		t.Errorf("expected default URL, got %q", flagURL)
	}
}

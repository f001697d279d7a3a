package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kwic.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tokenizer != wordTokenizer || cfg.Prompt == "" {
		t.Errorf("unexpected default configuration %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
trace = "Debug"
tokenizer = "lexmachine"
min_length = 3
keywords = true
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Trace != "Debug" || cfg.Tokenizer != lexTokenizer || cfg.MinLength != 3 || !cfg.Keywords {
		t.Errorf("configuration not read correctly: %+v", cfg)
	}
	if cfg.Prompt != "kwic> " {
		t.Errorf("expected prompt to keep its default, is %q", cfg.Prompt)
	}
}

func TestInvalidConfig(t *testing.T) {
	for i, content := range []string{
		`tokenizer = "regex"`,
		`min_length = -1`,
		`tokenizer = `,
	} {
		if _, err := loadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("test %d: expected configuration to be rejected", i)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected missing configuration file to be an error")
	}
}

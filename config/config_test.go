package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	cfg := Default()
	cfg.Port = 8080
	cfg.Root = t.TempDir()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !filepath.IsAbs(cfg.Root) {
		t.Errorf("Root not absolute: %q", cfg.Root)
	}
	if cfg.ServerName != DefaultServerName {
		t.Errorf("ServerName = %q", cfg.ServerName)
	}
	if cfg.Backlog != DefaultBacklog {
		t.Errorf("Backlog = %d", cfg.Backlog)
	}
}

func TestValidate_RelativeRootMadeAbsolute(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg := Default()
	cfg.Port = 8080
	cfg.Root = "."
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !filepath.IsAbs(cfg.Root) {
		t.Errorf("Root not absolute: %q", cfg.Root)
	}
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := validConfig(t)
		cfg.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d accepted", port)
		}
	}
}

func TestValidate_MissingRoot(t *testing.T) {
	cfg := validConfig(t)
	cfg.Root = filepath.Join(cfg.Root, "does-not-exist")
	if err := cfg.Validate(); err == nil {
		t.Error("nonexistent root accepted")
	}

	cfg = validConfig(t)
	cfg.Root = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty root accepted")
	}
}

func TestValidate_RootIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(cfg.Root, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Root = file
	if err := cfg.Validate(); err == nil {
		t.Error("file as root accepted")
	}
}

func TestValidate_EmptyIndex(t *testing.T) {
	cfg := validConfig(t)
	cfg.IndexFile = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty index filename accepted")
	}
}

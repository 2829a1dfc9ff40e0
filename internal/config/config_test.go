package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// chdir mirrors testing.T.Chdir (Go 1.24+), which this toolchain predates:
// it enters dir for the test's duration and restores the previous working
// directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("chdir: cannot restore working directory: " + err.Error())
		}
	})
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-ant-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-ant-test" {
		t.Errorf("expected key %q, got %q", "sk-ant-test", cfg.APIKey)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	chdir(t, t.TempDir())

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("ANTHROPIC_API_KEY=sk-ant-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)
	os.Unsetenv(EnvAPIKey)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-ant-dotenv" {
		t.Errorf("expected key from .env, got %q", cfg.APIKey)
	}
}

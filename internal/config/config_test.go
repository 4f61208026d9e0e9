package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-activity/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "git_activity.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
repositories:
  - ~/code/one
  - ~/code/two/
authors:
  - Sinclair Target
  - jim@mail.com
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	expected := config.Config{
		Repositories: []string{"~/code/one", "~/code/two/"},
		Authors:      []string{"Sinclair Target", "jim@mail.com"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yml")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	expected := config.Config{
		Repositories: []string{"./"},
		Authors:      []string{},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config is wrong:\n%s", diff)
	}
}

func TestLoadEmptyLists(t *testing.T) {
	path := writeConfig(t, "repositories:\nauthors:\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"./"}, cfg.Repositories); diff != "" {
		t.Errorf("expected default repositories:\n%s", diff)
	}

	if len(cfg.Authors) != 0 {
		t.Errorf("expected no authors, got %v", cfg.Authors)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "repositories:\n  - ~/code/one\n")
	t.Setenv("GIT_ACTIVITY_REPOSITORIES", "/srv/a /srv/b")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"/srv/a", "/srv/b"}, cfg.Repositories); diff != "" {
		t.Errorf("expected environment to win:\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "repositories:\n  - \"  \"\n")

	_, err := config.Load(path)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "repositories: [unclosed\n")

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := config.DefaultPath(); got != "/tmp/xdg/git_activity.yml" {
		t.Errorf("unexpected default path %q", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOCAL_REPOS_DIR", filepath.Join(dir, "clones"))
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("GIT_REMOTE_NAME", "")
	t.Setenv("STATE_FILE", "")
	t.Setenv("REGISTRY_FILE", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %q", s.Addr())
	}
	if s.RemoteName != "origin" {
		t.Fatalf("unexpected remote name %q", s.RemoteName)
	}
	if s.StateFile != filepath.Join(s.LocalReposDir, "dashboard_state.json") {
		t.Fatalf("unexpected state file %q", s.StateFile)
	}
	if info, err := os.Stat(s.LocalReposDir); err != nil || !info.IsDir() {
		t.Fatalf("repos dir not created: %v", err)
	}
	if len(s.AllowedOrigins) != 1 || s.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %+v", s.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOCAL_REPOS_DIR", dir)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GIT_REMOTE_NAME", "upstream")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Addr() != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %q", s.Addr())
	}
	if s.RemoteName != "upstream" {
		t.Fatalf("unexpected remote name %q", s.RemoteName)
	}
	if len(s.AllowedOrigins) != 2 || s.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %+v", s.AllowedOrigins)
	}
}

func TestParseOriginsWildcard(t *testing.T) {
	origins := parseOrigins(" * ")
	if len(origins) != 1 || origins[0] != "*" {
		t.Fatalf("unexpected origins %+v", origins)
	}
}

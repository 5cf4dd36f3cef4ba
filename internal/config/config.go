// Package config resolves runtime settings from the environment once at
// process start. Settings are read-only after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRemoteName is the remote binding used for synchronization.
const DefaultRemoteName = "origin"

// Settings is the process-wide configuration surface.
type Settings struct {
	// Host and Port form the listen address.
	Host string
	Port string
	// LocalReposDir is the root directory for local clones. Created at
	// startup if absent.
	LocalReposDir string
	// RemoteName is the remote binding name, conventionally "origin".
	RemoteName string
	// StateFile is the JSON data file backing the keyed-collection store.
	StateFile string
	// RegistryFile is the optional YAML repository registry.
	RegistryFile string
	// HostingToken is the fallback access token for the hosting client.
	HostingToken string
	// HostingAPIBase is the hosting service API base URL.
	HostingAPIBase string
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
}

// Load resolves settings from the environment and establishes the local
// repository root directory.
func Load() (*Settings, error) {
	reposDir := getEnv("LOCAL_REPOS_DIR", getEnv("REPO_PATH", ""))
	if reposDir == "" {
		reposDir = "local_repos"
	}
	abs, err := filepath.Abs(reposDir)
	if err != nil {
		return nil, fmt.Errorf("resolve repos dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create repos dir: %w", err)
	}

	s := &Settings{
		Host:           getEnv("SERVER_HOST", "0.0.0.0"),
		Port:           getEnv("SERVER_PORT", "8080"),
		LocalReposDir:  abs,
		RemoteName:     getEnv("GIT_REMOTE_NAME", DefaultRemoteName),
		StateFile:      getEnv("STATE_FILE", filepath.Join(abs, "dashboard_state.json")),
		RegistryFile:   getEnv("REGISTRY_FILE", filepath.Join(abs, "repos.yaml")),
		HostingToken:   os.Getenv("GITHUB_TOKEN"),
		HostingAPIBase: getEnv("GITHUB_API_BASE", "https://api.github.com"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
	return s, nil
}

// Addr returns the listen address.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

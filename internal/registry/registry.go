// Package registry loads the optional repository registry: a YAML file
// mapping repository names to their remote URL, description, and
// well-known branch names. Loaded once at process start and read-only
// thereafter.
package registry

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Entry is the registered metadata for one repository.
type Entry struct {
	// URL is the expected remote URL, informational.
	URL string `yaml:"url,omitempty"`
	// Branches lists the well-known branch names, used as a hint when
	// branch resolution fails.
	Branches []string `yaml:"branches,omitempty"`
	// Description is free-form.
	Description string `yaml:"description,omitempty"`
}

// Registry is an immutable name-to-metadata mapping.
type Registry struct {
	entries map[string]Entry
}

// Load reads the registry file at path. A missing file yields an empty
// registry; a malformed one is an error.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{entries: map[string]Entry{}}, nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}
	entries := map[string]Entry{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return &Registry{entries: entries}, nil
}

// Lookup returns the entry for name, if registered.
func (r *Registry) Lookup(name string) (Entry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// WellKnownBranches returns the configured branch hints for name, nil
// when none are registered.
func (r *Registry) WellKnownBranches(name string) []string {
	return r.entries[name].Branches
}

package gitrepo

import (
	"path/filepath"
	"strings"

	"gitdash/internal/apierror"
)

// safeName validates a repository name: non-empty after trimming, no path
// separators, no parent-traversal tokens. Pure path arithmetic, no I/O.
func safeName(name string) (string, error) {
	if strings.TrimSpace(name) == "" ||
		strings.ContainsAny(name, `/\`) ||
		strings.Contains(name, "..") {
		return "", apierror.InvalidName(name)
	}
	return name, nil
}

// Resolve maps a repository name to its path under the root, rejecting
// unsafe names.
func (s *Service) Resolve(name string) (string, error) {
	safe, err := safeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, safe), nil
}

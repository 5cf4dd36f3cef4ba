package gitrepo

import (
	"errors"
	"os"

	gitlib "github.com/go-git/go-git/v5"

	"gitdash/internal/apierror"
)

// open validates the name, then opens the working tree at its resolved
// path. A missing path or missing control metadata is RepoNotFound;
// metadata that exists but cannot be read is RepoOpenFailed.
func (s *Service) open(name string) (*gitlib.Repository, string, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, "", apierror.RepoNotFound(name, path)
	}
	repo, err := gitlib.PlainOpen(path)
	if err != nil {
		if errors.Is(err, gitlib.ErrRepositoryNotExists) {
			return nil, "", apierror.RepoNotFound(name, path)
		}
		return nil, "", apierror.RepoOpenFailed(path, err)
	}
	return repo, path, nil
}

// Package gitrepo implements the local repository synchronization engine:
// locating repositories under a sandboxed root, opening them, cloning and
// fast-forwarding against a single remote binding, resolving branch
// tracking relationships, computing ahead/behind divergence, and reporting
// structured status, log, and diff views.
package gitrepo

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"gitdash/internal/models"
)

// BranchHinter supplies well-known branch names for a repository, used to
// enrich branch-not-found errors. Implementations may return nil.
type BranchHinter interface {
	WellKnownBranches(repo string) []string
}

// Service owns all operations against repositories under a single root
// directory. Mutating operations are serialized per repository name.
type Service struct {
	root       string
	remoteName string
	locks      *nameLocks
	hints      BranchHinter
	logger     *slog.Logger
}

// New creates a Service rooted at root. The root directory must already
// exist; hints may be nil.
func New(root, remoteName string, hints BranchHinter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		root:       root,
		remoteName: remoteName,
		locks:      newNameLocks(),
		hints:      hints,
		logger:     logger,
	}
}

// ListRepositories returns the repositories discovered under the root:
// directories carrying git control metadata.
func (s *Service) ListRepositories() ([]models.LocalRepository, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	repos := []models.LocalRepository{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.root, entry.Name())
		if _, err := os.Stat(filepath.Join(path, gitlib.GitDirName)); err != nil {
			continue
		}
		repos = append(repos, models.LocalRepository{Name: entry.Name(), Path: path})
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })
	return repos, nil
}

// Detail returns the active branch, dirty flag, and last commit for one
// repository.
func (s *Service) Detail(name string) (models.LocalRepositoryDetail, error) {
	var detail models.LocalRepositoryDetail
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return detail, errBusy(name)
	}
	defer unlock()

	repo, path, err := s.open(name)
	if err != nil {
		return detail, err
	}
	detail.Name = name
	detail.Path = path

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			detail.ActiveBranch = head.Name().Short()
		}
		if commit, err := repo.CommitObject(head.Hash()); err == nil {
			detail.LastCommit = commitMetadata(commit)
		}
	}
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			detail.IsDirty = !status.IsClean()
		}
	}
	return detail, nil
}

// ListRemotes returns the configured remote bindings of a repository.
func (s *Service) ListRemotes(name string) ([]models.LocalRemote, error) {
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return nil, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return nil, err
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, err
	}
	out := []models.LocalRemote{}
	for _, remote := range remotes {
		cfg := remote.Config()
		out = append(out, models.LocalRemote{Name: cfg.Name, URLs: append([]string(nil), cfg.URLs...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func commitMetadata(commit *object.Commit) *models.CommitMetadata {
	return &models.CommitMetadata{
		SHA:     commit.Hash.String(),
		Message: commit.Message,
		Author:  commit.Author.Name,
		Date:    commit.Author.When.UTC().Format(time.RFC3339),
	}
}

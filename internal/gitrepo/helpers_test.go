package gitrepo

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"gitdash/internal/apierror"
)

var (
	whenMu  sync.Mutex
	whenSeq = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// nextWhen returns a strictly increasing timestamp so commit hashes in a
// test never collide.
func nextWhen() time.Time {
	whenMu.Lock()
	defer whenMu.Unlock()
	whenSeq = whenSeq.Add(time.Minute)
	return whenSeq
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	return New(root, "origin", nil, newTestLogger()), root
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func commitFile(t *testing.T, repo *gitlib.Repository, root, name, content, message, author string) plumbing.Hash {
	t.Helper()
	writeFile(t, root, name, content)
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	hash, err := wt.Commit(message, &gitlib.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: author + "@example.com",
			When:  nextWhen(),
		},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash
}

// newUpstream creates a repository with one commit on master, suitable as
// a filesystem-path clone source.
func newUpstream(t *testing.T) (*gitlib.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gitlib.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init upstream: %v", err)
	}
	commitFile(t, repo, dir, "README.md", "hello\n", "initial commit", "Alice")
	return repo, dir
}

func openLocal(t *testing.T, path string) *gitlib.Repository {
	t.Helper()
	repo, err := gitlib.PlainOpen(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return repo
}

func headHash(t *testing.T, repo *gitlib.Repository) plumbing.Hash {
	t.Helper()
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	return head.Hash()
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected coded error, got %v", err)
	}
	if apiErr.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, apiErr.Code, err)
	}
}

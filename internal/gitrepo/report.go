package gitrepo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pmezard/go-difflib/difflib"

	"gitdash/internal/apierror"
	"gitdash/internal/models"
)

// Diff modes.
const (
	DiffModeSummary = "summary"
	DiffModePatch   = "patch"
)

// Status reports the structured working-tree status. Branch is empty
// when HEAD is detached.
func (s *Service) Status(name string) (models.GitStatus, error) {
	var res models.GitStatus
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return res, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return res, err
	}
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		res.Branch = head.Name().Short()
	}
	wt, err := repo.Worktree()
	if err != nil {
		return res, err
	}
	status, err := wt.Status()
	if err != nil {
		return res, err
	}
	res.Files = []models.GitStatusFile{}
	for path, st := range status {
		code := statusCode(st.Staging, st.Worktree)
		if code == "" {
			continue
		}
		res.Files = append(res.Files, models.GitStatusFile{Path: path, Status: code})
	}
	sort.Slice(res.Files, func(i, j int) bool { return res.Files[i].Path < res.Files[j].Path })
	return res, nil
}

// Log returns up to limit commits from the current position, most recent
// first, optionally filtered by author identity.
func (s *Service) Log(name string, limit int, author string) (models.GitLogResponse, error) {
	res := models.GitLogResponse{Entries: []models.GitLogEntry{}}
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return res, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return res, err
	}
	if limit <= 0 {
		limit = 50
	}
	head, err := repo.Head()
	if err != nil {
		// Unborn HEAD has no history.
		return res, nil
	}
	iter, err := repo.Log(&gitlib.LogOptions{From: head.Hash()})
	if err != nil {
		return res, err
	}
	defer iter.Close()

	needle := strings.ToLower(strings.TrimSpace(author))
	for len(res.Entries) < limit {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		if needle != "" && !authorMatches(commit, needle) {
			continue
		}
		res.Entries = append(res.Entries, models.GitLogEntry{
			SHA:     commit.Hash.String(),
			Author:  commit.Author.Name,
			Message: commit.Message,
			Date:    commit.Author.When.UTC(),
		})
	}
	return res, nil
}

// Diff compares target (a revision, default HEAD) against the working
// tree. Summary mode yields per-file addition/deletion counts plus
// totals; patch mode yields the raw unified patch.
func (s *Service) Diff(name, target, mode string) (models.GitDiffSummary, error) {
	res := models.GitDiffSummary{Files: []models.GitDiffFile{}, Mode: mode}
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return res, errBusy(name)
	}
	defer unlock()

	repo, root, err := s.open(name)
	if err != nil {
		return res, err
	}
	if target == "" {
		target = "HEAD"
	}
	targetTree, err := treeAt(repo, target)
	if err != nil {
		return res, apierror.DiffFailed(target, mode, err)
	}

	paths, err := changedPaths(repo, targetTree)
	if err != nil {
		return res, err
	}

	var patch strings.Builder
	for _, path := range paths {
		fileDiff, err := diffOneFile(targetTree, root, path)
		if err != nil {
			return res, err
		}
		if fileDiff == nil {
			continue
		}
		if mode == DiffModePatch {
			patch.WriteString(fileDiff.patch)
			continue
		}
		res.Files = append(res.Files, models.GitDiffFile{
			Path:      path,
			Status:    fileDiff.status,
			Additions: fileDiff.additions,
			Deletions: fileDiff.deletions,
		})
		res.Stats.Additions += fileDiff.additions
		res.Stats.Deletions += fileDiff.deletions
	}
	if mode == DiffModePatch {
		res.Patch = patch.String()
	}
	return res, nil
}

// Staged lists the files with changes checked into the index.
func (s *Service) Staged(name string) ([]models.GitStatusFile, error) {
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return nil, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, err
	}
	files := []models.GitStatusFile{}
	for path, st := range status {
		if st.Staging == gitlib.Unmodified || st.Staging == gitlib.Untracked {
			continue
		}
		files = append(files, models.GitStatusFile{Path: path, Status: string(rune(st.Staging))})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ReadFile returns the content of path as it existed at ref.
func (s *Service) ReadFile(name, path, ref string) (models.GitFileResponse, error) {
	var res models.GitFileResponse
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return res, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return res, err
	}
	if ref == "" {
		ref = "HEAD"
	}
	tree, err := treeAt(repo, ref)
	if err != nil {
		return res, apierror.FileNotFound(path, ref)
	}
	file, err := tree.File(path)
	if err != nil {
		return res, apierror.FileNotFound(path, ref)
	}
	content, err := file.Contents()
	if err != nil {
		return res, err
	}
	return models.GitFileResponse{Path: path, Ref: ref, Content: content}, nil
}

func treeAt(repo *gitlib.Repository, rev string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}

// changedPaths is the union of tree-level changes between target and HEAD
// and the dirty paths of the working tree, sorted.
func changedPaths(repo *gitlib.Repository, targetTree *object.Tree) ([]string, error) {
	seen := map[string]struct{}{}

	if headTree, err := treeAt(repo, "HEAD"); err == nil {
		changes, err := object.DiffTree(targetTree, headTree)
		if err != nil {
			return nil, err
		}
		for _, change := range changes {
			if change.From.Name != "" {
				seen[change.From.Name] = struct{}{}
			}
			if change.To.Name != "" {
				seen[change.To.Name] = struct{}{}
			}
		}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, err
	}
	for path, st := range status {
		if st.Staging == gitlib.Unmodified && st.Worktree == gitlib.Unmodified {
			continue
		}
		seen[path] = struct{}{}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

type fileDiff struct {
	status    string
	additions int
	deletions int
	patch     string
}

// diffOneFile diffs one path between the target tree blob and the on-disk
// content. Returns nil when the two sides are identical.
func diffOneFile(targetTree *object.Tree, root, path string) (*fileDiff, error) {
	var fromContent string
	fromExists := false
	fromBinary := false
	if file, err := targetTree.File(path); err == nil {
		fromExists = true
		if bin, err := file.IsBinary(); err == nil && bin {
			fromBinary = true
		} else {
			fromContent, err = file.Contents()
			if err != nil {
				return nil, err
			}
		}
	} else if !errors.Is(err, object.ErrFileNotFound) {
		return nil, err
	}

	var toContent string
	toExists := false
	toBinary := false
	data, err := os.ReadFile(filepath.Join(root, path))
	switch {
	case err == nil:
		toExists = true
		if bytes.IndexByte(data, 0) >= 0 {
			toBinary = true
		} else {
			toContent = string(data)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if !fromExists && !toExists {
		return nil, nil
	}

	status := "modified"
	if !fromExists {
		status = "added"
	} else if !toExists {
		status = "deleted"
	}

	header := fmt.Sprintf("diff --git a/%s b/%s\n", path, path)
	if fromBinary || toBinary {
		return &fileDiff{status: status, patch: header + "(binary files differ)\n"}, nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(fromContent),
		B:        difflib.SplitLines(toContent),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	additions, deletions := countDiffLines(text)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return &fileDiff{
		status:    status,
		additions: additions,
		deletions: deletions,
		patch:     header + text,
	}, nil
}

func countDiffLines(text string) (additions, deletions int) {
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			additions++
		case strings.HasPrefix(line, "-"):
			deletions++
		}
	}
	return additions, deletions
}

// statusCode renders the two porcelain-style status letters, trimmed.
func statusCode(staging, worktree gitlib.StatusCode) string {
	code := strings.TrimSpace(string(rune(staging)) + string(rune(worktree)))
	return code
}

func authorMatches(commit *object.Commit, needle string) bool {
	identity := strings.ToLower(commit.Author.Name + " " + commit.Author.Email)
	return strings.Contains(identity, needle)
}

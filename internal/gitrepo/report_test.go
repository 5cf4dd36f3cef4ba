package gitrepo

import (
	"path/filepath"
	"strings"
	"testing"

	gitlib "github.com/go-git/go-git/v5"
)

// newLocalRepo initializes a repository directly under the service root
// with one committed file.
func newLocalRepo(t *testing.T, root, name string) (*gitlib.Repository, string) {
	t.Helper()
	dir := filepath.Join(root, name)
	repo, err := gitlib.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	commitFile(t, repo, dir, "main.go", "package main\n", "initial commit", "Alice")
	return repo, dir
}

func TestStatusReportsWorktreeState(t *testing.T) {
	svc, root := newService(t)
	repo, dir := newLocalRepo(t, root, "demo")

	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	writeFile(t, dir, "notes.txt", "untracked\n")
	commitFile(t, repo, dir, "staged.txt", "staged\n", "second commit", "Alice")
	writeFile(t, dir, "staged2.txt", "staged\n")
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("staged2.txt"); err != nil {
		t.Fatalf("add: %v", err)
	}

	status, err := svc.Status("demo")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Branch != "master" {
		t.Fatalf("expected branch master, got %q", status.Branch)
	}
	byPath := map[string]string{}
	for _, f := range status.Files {
		byPath[f.Path] = f.Status
	}
	if byPath["main.go"] != "M" {
		t.Errorf("expected main.go modified, got %q", byPath["main.go"])
	}
	if byPath["notes.txt"] != "??" {
		t.Errorf("expected notes.txt untracked, got %q", byPath["notes.txt"])
	}
	if byPath["staged2.txt"] != "A" {
		t.Errorf("expected staged2.txt added, got %q", byPath["staged2.txt"])
	}
}

func TestStatusMissingRepo(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Status("ghost")
	assertCode(t, err, "repo_not_found")
}

func TestLogLimitAndAuthorFilter(t *testing.T) {
	svc, root := newService(t)
	repo, dir := newLocalRepo(t, root, "demo")
	commitFile(t, repo, dir, "a.txt", "a\n", "commit by bob", "Bob")
	commitFile(t, repo, dir, "b.txt", "b\n", "another by alice", "Alice")

	log, err := svc.Log("demo", 2, "")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log.Entries))
	}
	if log.Entries[0].Message != "another by alice" {
		t.Fatalf("expected most recent first, got %q", log.Entries[0].Message)
	}

	log, err = svc.Log("demo", 50, "bob")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log.Entries) != 1 || log.Entries[0].Author != "Bob" {
		t.Fatalf("expected one commit by Bob, got %+v", log.Entries)
	}
}

func TestDiffSummaryCountsChanges(t *testing.T) {
	svc, root := newService(t)
	_, dir := newLocalRepo(t, root, "demo")

	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	writeFile(t, dir, "extra.txt", "new file\n")

	diff, err := svc.Diff("demo", "", DiffModeSummary)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	byPath := map[string]string{}
	for _, f := range diff.Files {
		byPath[f.Path] = f.Status
	}
	if byPath["main.go"] != "modified" {
		t.Errorf("expected main.go modified, got %q", byPath["main.go"])
	}
	if byPath["extra.txt"] != "added" {
		t.Errorf("expected extra.txt added, got %q", byPath["extra.txt"])
	}
	if diff.Stats.Additions < 3 {
		t.Errorf("expected at least 3 added lines, got %d", diff.Stats.Additions)
	}
}

func TestDiffPatchMode(t *testing.T) {
	svc, root := newService(t)
	_, dir := newLocalRepo(t, root, "demo")
	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	diff, err := svc.Diff("demo", "HEAD", DiffModePatch)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(diff.Patch, "diff --git a/main.go b/main.go") {
		t.Fatalf("expected patch header, got %q", diff.Patch)
	}
	if !strings.Contains(diff.Patch, "+func main() {}") {
		t.Fatalf("expected added line in patch, got %q", diff.Patch)
	}
	if len(diff.Files) != 0 {
		t.Fatalf("patch mode must not populate file summaries, got %+v", diff.Files)
	}
}

func TestDiffUnknownTarget(t *testing.T) {
	svc, root := newService(t)
	newLocalRepo(t, root, "demo")
	_, err := svc.Diff("demo", "does-not-exist", DiffModeSummary)
	assertCode(t, err, "diff_failed")
}

func TestStagedListsIndexChanges(t *testing.T) {
	svc, root := newService(t)
	repo, dir := newLocalRepo(t, root, "demo")

	writeFile(t, dir, "staged.txt", "staged\n")
	writeFile(t, dir, "loose.txt", "loose\n")
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("staged.txt"); err != nil {
		t.Fatalf("add: %v", err)
	}

	files, err := svc.Staged("demo")
	if err != nil {
		t.Fatalf("staged: %v", err)
	}
	if len(files) != 1 || files[0].Path != "staged.txt" || files[0].Status != "A" {
		t.Fatalf("expected staged.txt added, got %+v", files)
	}
}

func TestReadFileAtRef(t *testing.T) {
	svc, root := newService(t)
	repo, dir := newLocalRepo(t, root, "demo")
	first := headHash(t, repo)
	commitFile(t, repo, dir, "main.go", "package main // v2\n", "second commit", "Alice")

	file, err := svc.ReadFile("demo", "main.go", "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if file.Content != "package main // v2\n" || file.Ref != "HEAD" {
		t.Fatalf("unexpected response %+v", file)
	}

	file, err = svc.ReadFile("demo", "main.go", first.String())
	if err != nil {
		t.Fatalf("read at ref: %v", err)
	}
	if file.Content != "package main\n" {
		t.Fatalf("expected first revision content, got %q", file.Content)
	}

	_, err = svc.ReadFile("demo", "missing.go", "")
	assertCode(t, err, "file_not_found")
}

func TestReadsReportBusyDuringMutation(t *testing.T) {
	svc, root := newService(t)
	newLocalRepo(t, root, "demo")

	unlock := svc.locks.lock("demo")
	defer unlock()

	_, err := svc.Status("demo")
	assertCode(t, err, "repo_busy")
	_, err = svc.Detail("demo")
	assertCode(t, err, "repo_busy")
	_, _, err = svc.Divergence("demo", "master")
	assertCode(t, err, "repo_busy")
}

func TestDetailReportsDirtyAndLastCommit(t *testing.T) {
	svc, root := newService(t)
	_, dir := newLocalRepo(t, root, "demo")

	detail, err := svc.Detail("demo")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.ActiveBranch != "master" || detail.IsDirty {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.LastCommit == nil || detail.LastCommit.Message != "initial commit" {
		t.Fatalf("unexpected last commit %+v", detail.LastCommit)
	}

	writeFile(t, dir, "scratch.txt", "wip\n")
	detail, err = svc.Detail("demo")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if !detail.IsDirty {
		t.Fatal("expected dirty working tree")
	}
}

func TestListRemotes(t *testing.T) {
	svc, _ := newService(t)
	_, upstream := newUpstream(t)
	cloneDemo(t, svc, upstream)

	remotes, err := svc.ListRemotes("demo")
	if err != nil {
		t.Fatalf("remotes: %v", err)
	}
	if len(remotes) != 1 || remotes[0].Name != "origin" {
		t.Fatalf("expected single origin remote, got %+v", remotes)
	}
	if len(remotes[0].URLs) != 1 || remotes[0].URLs[0] != upstream {
		t.Fatalf("unexpected remote URLs %+v", remotes[0].URLs)
	}
}

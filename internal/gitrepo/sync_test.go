package gitrepo

import (
	"context"
	"path/filepath"
	"testing"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func TestSyncOrCloneRequiresRemoteForAbsentRepo(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.SyncOrClone(context.Background(), "demo", "")
	assertCode(t, err, "remote_required")
}

func TestSyncOrCloneRejectsUnsafeName(t *testing.T) {
	svc, _ := newService(t)
	for _, name := range []string{"", "  ", "a/b", `a\b`, "..", "a..b"} {
		_, err := svc.SyncOrClone(context.Background(), name, "ignored")
		assertCode(t, err, "invalid_repo_name")
	}
}

func TestSyncOrCloneClonesAbsentRepo(t *testing.T) {
	svc, root := newService(t)
	_, upstream := newUpstream(t)

	res, err := svc.SyncOrClone(context.Background(), "demo", upstream)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if !res.Created || res.Updated {
		t.Fatalf("expected created result, got %+v", res)
	}
	if res.Path != filepath.Join(root, "demo") {
		t.Fatalf("unexpected path %q", res.Path)
	}
	if res.DefaultBranch != "master" {
		t.Fatalf("expected default branch master, got %q", res.DefaultBranch)
	}

	repos, err := svc.ListRepositories()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(repos) != 1 || repos[0].Name != "demo" {
		t.Fatalf("expected one repository named demo, got %+v", repos)
	}
}

func TestSyncOrCloneUpToDateIsNoOp(t *testing.T) {
	svc, _ := newService(t)
	_, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created || res.Updated {
		t.Fatalf("expected no-op result, got %+v", res)
	}
	if res.Message != "Repository already up to date." {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestSyncOrCloneFastForwards(t *testing.T) {
	svc, root := newService(t)
	upstreamRepo, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	want := commitFile(t, upstreamRepo, upstream, "README.md", "hello again\n", "second commit", "Alice")

	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !res.Updated || res.Created {
		t.Fatalf("expected updated result, got %+v", res)
	}

	local := openLocal(t, filepath.Join(root, "demo"))
	if got := headHash(t, local); got != want {
		t.Fatalf("expected local head %s, got %s", want, got)
	}
}

func TestSyncOrCloneDirtyTreeFetchesOnly(t *testing.T) {
	svc, root := newService(t)
	upstreamRepo, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	local := openLocal(t, filepath.Join(root, "demo"))
	before := headHash(t, local)

	commitFile(t, upstreamRepo, upstream, "README.md", "upstream change\n", "second commit", "Alice")
	writeFile(t, filepath.Join(root, "demo"), "scratch.txt", "work in progress\n")

	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created || res.Updated {
		t.Fatalf("expected guarded no-op, got %+v", res)
	}
	if got := headHash(t, local); got != before {
		t.Fatalf("local head moved from %s to %s despite dirty tree", before, got)
	}

	// Remote refs were still fetched.
	ref, err := local.Reference(plumbing.ReferenceName("refs/remotes/origin/master"), true)
	if err != nil {
		t.Fatalf("remote ref: %v", err)
	}
	if ref.Hash() == before {
		t.Fatal("expected fetched remote ref to advance")
	}
}

func TestSyncOrCloneRemoteMismatch(t *testing.T) {
	svc, _ := newService(t)
	_, upstream := newUpstream(t)
	_, other := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	_, err := svc.SyncOrClone(context.Background(), "demo", other)
	assertCode(t, err, "remote_mismatch")

	// The binding is untouched; syncing against the original URL works.
	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("sync after mismatch: %v", err)
	}
}

func TestSyncOrCloneLocalAhead(t *testing.T) {
	svc, root := newService(t)
	_, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	local := openLocal(t, filepath.Join(root, "demo"))
	want := commitFile(t, local, filepath.Join(root, "demo"), "local.txt", "local work\n", "local commit", "Bob")

	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created || res.Updated {
		t.Fatalf("expected no-op result, got %+v", res)
	}
	if got := headHash(t, local); got != want {
		t.Fatalf("local head moved from %s to %s", want, got)
	}
}

func TestSyncOrCloneDivergedHistories(t *testing.T) {
	svc, root := newService(t)
	upstreamRepo, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	local := openLocal(t, filepath.Join(root, "demo"))
	localTip := commitFile(t, local, filepath.Join(root, "demo"), "local.txt", "local work\n", "local commit", "Bob")
	commitFile(t, upstreamRepo, upstream, "upstream.txt", "upstream work\n", "upstream commit", "Alice")

	_, err := svc.SyncOrClone(context.Background(), "demo", "")
	assertCode(t, err, "fast_forward_failed")
	if got := headHash(t, local); got != localTip {
		t.Fatalf("local head moved from %s to %s", localTip, got)
	}

	// The rejected sync still fetched, so divergence is visible.
	ahead, behind, err := svc.Divergence("demo", "master")
	if err != nil {
		t.Fatalf("divergence: %v", err)
	}
	if ahead != 1 || behind != 1 {
		t.Fatalf("expected divergence (1, 1), got (%d, %d)", ahead, behind)
	}
}

func TestSyncOrCloneRemoteMissingOnPresentRepo(t *testing.T) {
	svc, root := newService(t)
	newLocalRepo(t, root, "demo")

	_, err := svc.SyncOrClone(context.Background(), "demo", "")
	assertCode(t, err, "remote_missing")
}

func TestSyncOrCloneCreatesBindingOnPresentRepo(t *testing.T) {
	svc, root := newService(t)
	_, upstream := newUpstream(t)
	newLocalRepo(t, root, "demo")

	// The binding is created and fetched; the unrelated histories are
	// then rejected by the fast-forward check.
	_, err := svc.SyncOrClone(context.Background(), "demo", upstream)
	assertCode(t, err, "fast_forward_failed")

	remotes, err := svc.ListRemotes("demo")
	if err != nil {
		t.Fatalf("remotes: %v", err)
	}
	if len(remotes) != 1 || remotes[0].Name != "origin" {
		t.Fatalf("expected created origin binding, got %+v", remotes)
	}
	if len(remotes[0].URLs) != 1 || remotes[0].URLs[0] != upstream {
		t.Fatalf("unexpected binding URLs %+v", remotes[0].URLs)
	}

	local := openLocal(t, filepath.Join(root, "demo"))
	if _, err := local.Reference(plumbing.ReferenceName("refs/remotes/origin/master"), true); err != nil {
		t.Fatalf("expected fetched remote ref: %v", err)
	}
}

func TestSyncOrCloneDetachedHeadFetchesOnly(t *testing.T) {
	svc, root := newService(t)
	upstreamRepo, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	local := openLocal(t, filepath.Join(root, "demo"))
	before := headHash(t, local)
	wt, err := local.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if err := wt.Checkout(&gitlib.CheckoutOptions{Hash: before}); err != nil {
		t.Fatalf("detach: %v", err)
	}

	want := commitFile(t, upstreamRepo, upstream, "README.md", "hello again\n", "second commit", "Alice")

	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created || res.Updated {
		t.Fatalf("expected guarded no-op, got %+v", res)
	}
	if got := headHash(t, local); got != before {
		t.Fatalf("detached HEAD moved from %s to %s", before, got)
	}

	ref, err := local.Reference(plumbing.ReferenceName("refs/remotes/origin/master"), true)
	if err != nil {
		t.Fatalf("remote ref: %v", err)
	}
	if ref.Hash() != want {
		t.Fatalf("expected fetched remote ref %s, got %s", want, ref.Hash())
	}
}

func TestSyncOrCloneNoTrackingBranch(t *testing.T) {
	svc, _ := newService(t)
	_, upstream := newUpstream(t)

	if _, err := svc.SyncOrClone(context.Background(), "demo", upstream); err != nil {
		t.Fatalf("clone: %v", err)
	}
	if _, err := svc.Checkout(context.Background(), "demo", "topic", true); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	res, err := svc.SyncOrClone(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created || res.Updated {
		t.Fatalf("expected no-op result, got %+v", res)
	}
	if res.Message != "No remote tracking branch found; fetched remote refs without fast-forwarding." {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/owner/repo", "https://example.com/owner/repo.git"},
		{"https://example.com/owner/repo/", "https://example.com/owner/repo.git"},
		{"https://example.com/owner/repo.git", "https://example.com/owner/repo.git"},
		{"http://example.com/owner/repo", "http://example.com/owner/repo.git"},
		{"  https://example.com/owner/repo  ", "https://example.com/owner/repo.git"},
		{"git@example.com:owner/repo", "git@example.com:owner/repo"},
		{"ssh://git@example.com/owner/repo", "ssh://git@example.com/owner/repo"},
		{"/var/repos/demo", "/var/repos/demo"},
	}
	for _, tt := range tests {
		if got := NormalizeRemoteURL(tt.in); got != tt.want {
			t.Errorf("NormalizeRemoteURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

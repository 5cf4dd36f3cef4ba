package gitrepo

import (
	"context"
	"errors"
	"os"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"gitdash/internal/apierror"
	"gitdash/internal/models"
)

// SyncOrClone brings a named repository up to date against its remote
// binding. An absent repository is cloned (remoteURL required); a present
// one is fetched and fast-forwarded when that is safe. A dirty working
// tree or detached HEAD downgrades the call to fetch-only. A supplied
// remoteURL that conflicts with the stored binding fails rather than
// repointing the binding.
func (s *Service) SyncOrClone(ctx context.Context, name, remoteURL string) (models.SyncResult, error) {
	var res models.SyncResult
	path, err := s.Resolve(name)
	if err != nil {
		return res, err
	}

	unlock := s.locks.lock(name)
	defer unlock()

	var normalized string
	if strings.TrimSpace(remoteURL) != "" {
		normalized = NormalizeRemoteURL(remoteURL)
	}

	if _, err := os.Stat(path); err != nil {
		return s.cloneAbsent(ctx, name, path, normalized)
	}

	repo, _, err := s.open(name)
	if err != nil {
		return res, err
	}
	res.Path = path
	finish := func() (models.SyncResult, error) {
		res.DefaultBranch = s.discoverDefaultBranch(repo)
		return res, nil
	}

	remote, err := s.resolveBinding(repo, name, normalized)
	if err != nil {
		return res, err
	}

	if err := remote.FetchContext(ctx, &gitlib.FetchOptions{}); err != nil &&
		!errors.Is(err, gitlib.NoErrAlreadyUpToDate) {
		return res, apierror.FetchFailed(remote.Config().Name, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return res, err
	}
	status, err := wt.Status()
	if err != nil {
		return res, err
	}
	if !status.IsClean() {
		res.Message = "Local repository has uncommitted changes; fetched remote refs without fast-forwarding."
		return finish()
	}

	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		res.Message = "Repository is in a detached HEAD state; fetched remote refs without fast-forwarding."
		return finish()
	}

	targetRef := s.trackingTarget(repo, remote.Config().Name, head.Name().Short())
	remoteRef, err := repo.Reference(plumbing.ReferenceName("refs/remotes/"+targetRef), true)
	if err != nil {
		res.Message = "No remote tracking branch found; fetched remote refs without fast-forwarding."
		return finish()
	}

	if head.Hash() == remoteRef.Hash() {
		res.Message = "Repository already up to date."
		return finish()
	}

	localCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return res, err
	}
	remoteCommit, err := repo.CommitObject(remoteRef.Hash())
	if err != nil {
		return res, err
	}

	// Fast-forward only: the local tip must be an ancestor of the remote
	// tip. Diverged histories are rejected with the branch untouched.
	canFastForward, err := localCommit.IsAncestor(remoteCommit)
	if err != nil {
		return res, err
	}
	if canFastForward {
		if err := wt.Reset(&gitlib.ResetOptions{Mode: gitlib.HardReset, Commit: remoteRef.Hash()}); err != nil {
			return res, err
		}
		s.logger.Info("fast-forwarded repository", "repo", name, "target", targetRef)
		res.Updated = true
		res.Message = "Repository fast-forwarded to latest remote state."
		return finish()
	}

	localAhead, err := remoteCommit.IsAncestor(localCommit)
	if err != nil {
		return res, err
	}
	if localAhead {
		res.Message = "Local branch is ahead of its tracking reference; nothing to fast-forward."
		return finish()
	}
	return res, apierror.FastForwardFailed(targetRef)
}

func (s *Service) cloneAbsent(ctx context.Context, name, path, normalized string) (models.SyncResult, error) {
	var res models.SyncResult
	if normalized == "" {
		return res, apierror.RemoteRequired(name)
	}
	repo, err := gitlib.PlainCloneContext(ctx, path, false, &gitlib.CloneOptions{
		URL:        normalized,
		RemoteName: s.remoteName,
	})
	if err != nil {
		return res, apierror.CloneFailed(normalized, err)
	}
	s.logger.Info("cloned repository", "repo", name, "remote", normalized)
	res.Path = path
	res.Created = true
	res.Message = "Repository cloned successfully."
	res.DefaultBranch = s.discoverDefaultBranch(repo)
	return res, nil
}

// resolveBinding returns the remote used for synchronization, creating it
// when absent and a URL was supplied, and rejecting a supplied URL that
// conflicts with the stored binding.
func (s *Service) resolveBinding(repo *gitlib.Repository, name, normalized string) (*gitlib.Remote, error) {
	remote, err := repo.Remote(s.remoteName)
	if err != nil {
		if !errors.Is(err, gitlib.ErrRemoteNotFound) {
			return nil, err
		}
		remotes, listErr := repo.Remotes()
		if listErr != nil {
			return nil, listErr
		}
		if len(remotes) > 0 {
			remote = remotes[0]
		}
	}
	if remote == nil {
		if normalized == "" {
			return nil, apierror.RemoteMissing(name)
		}
		created, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: s.remoteName,
			URLs: []string{normalized},
		})
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	if normalized != "" && !remoteURLsMatch(normalized, remote.Config().URLs) {
		existing := make([]string, 0, len(remote.Config().URLs))
		for _, url := range remote.Config().URLs {
			existing = append(existing, NormalizeRemoteURL(url))
		}
		return nil, apierror.RemoteMismatch(normalized, existing)
	}
	return remote, nil
}

// trackingTarget returns the remote-qualified reference the branch should
// integrate with: its configured tracking metadata when present, else
// <remoteName>/<branchName>.
func (s *Service) trackingTarget(repo *gitlib.Repository, remoteName, branchName string) string {
	if cfg, err := repo.Branch(branchName); err == nil && cfg.Remote != "" && cfg.Merge != "" {
		return cfg.Remote + "/" + cfg.Merge.Short()
	}
	return remoteName + "/" + branchName
}

// discoverDefaultBranch reports the active branch, falling back to the
// remote HEAD symbolic reference for detached or freshly cloned trees.
func (s *Service) discoverDefaultBranch(repo *gitlib.Repository) string {
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		return head.Name().Short()
	}
	refName := plumbing.ReferenceName("refs/remotes/" + s.remoteName + "/HEAD")
	if ref, err := repo.Reference(refName, false); err == nil && ref.Type() == plumbing.SymbolicReference {
		if target := ref.Target(); target.IsRemote() {
			if parts := strings.SplitN(target.Short(), "/", 2); len(parts) == 2 {
				return parts[1]
			}
		}
	}
	return ""
}

package gitrepo

import (
	"context"
	"errors"
	"sort"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"gitdash/internal/apierror"
	"gitdash/internal/models"
)

// Checkout resolves branchInput to a local branch and makes it active.
// Input may be a bare local name, a remote-qualified name, or, with
// create, a brand-new name started from the current position. A bare
// name with no local match is resolved against the remote binding; a
// matching remote reference yields a new local tracking branch. A local
// branch already tracking a different reference is never rebound.
func (s *Service) Checkout(ctx context.Context, name, branchInput string, create bool) (models.BranchStatus, error) {
	var res models.BranchStatus
	if _, err := s.Resolve(name); err != nil {
		return res, err
	}

	unlock := s.locks.lock(name)
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return res, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return res, err
	}

	branchRefName := plumbing.NewBranchReferenceName(branchInput)
	_, localErr := repo.Reference(branchRefName, false)
	localExists := localErr == nil

	if create {
		if localExists {
			return res, apierror.BranchAlreadyExists(branchInput)
		}
		if err := wt.Checkout(&gitlib.CheckoutOptions{Branch: branchRefName, Create: true}); err != nil {
			return res, apierror.CheckoutFailed(branchInput, err)
		}
		s.logger.Info("created branch", "repo", name, "branch", branchInput)
		return models.BranchStatus{Name: branchInput, IsActive: true}, nil
	}

	if localExists {
		if err := wt.Checkout(&gitlib.CheckoutOptions{Branch: branchRefName}); err != nil {
			return res, apierror.CheckoutFailed(branchInput, err)
		}
		return s.branchStatus(repo, branchInput, true), nil
	}

	// Treat the input as a short name under the remote binding.
	short := strings.TrimPrefix(branchInput, s.remoteName+"/")
	s.fetchBestEffort(ctx, repo, name)

	remoteRef, err := repo.Reference(plumbing.NewRemoteReferenceName(s.remoteName, short), true)
	if err != nil {
		var known []string
		if s.hints != nil {
			known = s.hints.WellKnownBranches(name)
		}
		return res, apierror.BranchNotFound(branchInput, known)
	}

	shortRefName := plumbing.NewBranchReferenceName(short)
	if _, err := repo.Reference(shortRefName, false); err != nil {
		// New local branch at the remote tip, tracking it.
		if err := repo.Storer.SetReference(plumbing.NewHashReference(shortRefName, remoteRef.Hash())); err != nil {
			return res, err
		}
		if err := repo.CreateBranch(&gitconfig.Branch{
			Name:   short,
			Remote: s.remoteName,
			Merge:  shortRefName,
		}); err != nil && !errors.Is(err, gitlib.ErrBranchExists) {
			return res, err
		}
		if err := wt.Checkout(&gitlib.CheckoutOptions{Branch: shortRefName}); err != nil {
			return res, apierror.CheckoutFailed(short, err)
		}
		s.logger.Info("created tracking branch", "repo", name, "branch", short)
		return models.BranchStatus{
			Name:     short,
			IsActive: true,
			Tracking: s.remoteName + "/" + short,
		}, nil
	}

	// A local branch of the derived short name already exists: activate
	// it only when it tracks exactly the requested remote reference.
	want := s.remoteName + "/" + short
	existing := s.trackingName(repo, short)
	if existing != want {
		return res, apierror.TrackingConflict(short, want, existing)
	}
	if err := wt.Checkout(&gitlib.CheckoutOptions{Branch: shortRefName}); err != nil {
		return res, apierror.CheckoutFailed(short, err)
	}
	return s.branchStatus(repo, short, true), nil
}

// ListBranches returns the local branches with their tracking references
// and on-demand ahead/behind counts, active branch first.
func (s *Service) ListBranches(name string) ([]models.BranchStatus, error) {
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return nil, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return nil, err
	}
	var active string
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		active = head.Name().Short()
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	branches := []models.BranchStatus{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branchName := ref.Name().Short()
		status := s.branchStatus(repo, branchName, branchName == active)
		branches = append(branches, status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(branches, func(i, j int) bool {
		if branches[i].IsActive != branches[j].IsActive {
			return branches[i].IsActive
		}
		return strings.ToLower(branches[i].Name) < strings.ToLower(branches[j].Name)
	})
	return branches, nil
}

// branchStatus assembles the tracking relationship and divergence counts
// for one local branch. Counts are computed fresh on every call.
func (s *Service) branchStatus(repo *gitlib.Repository, branchName string, active bool) models.BranchStatus {
	status := models.BranchStatus{Name: branchName, IsActive: active}
	tracking := s.trackingName(repo, branchName)
	if tracking == "" {
		return status
	}
	status.Tracking = tracking

	localRef, err := repo.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err != nil {
		return status
	}
	remoteRef, err := repo.Reference(plumbing.ReferenceName("refs/remotes/"+tracking), true)
	if err != nil {
		return status
	}
	status.Ahead, status.Behind = aheadBehind(repo, localRef.Hash(), remoteRef.Hash())
	return status
}

// trackingName returns the remote-qualified tracking reference of a
// branch, or "" when none is configured.
func (s *Service) trackingName(repo *gitlib.Repository, branchName string) string {
	cfg, err := repo.Branch(branchName)
	if err != nil || cfg.Remote == "" || cfg.Merge == "" {
		return ""
	}
	return cfg.Remote + "/" + cfg.Merge.Short()
}

// fetchBestEffort refreshes remote refs before branch resolution. Fetch
// failures are logged, not fatal: resolution continues against the refs
// already on disk.
func (s *Service) fetchBestEffort(ctx context.Context, repo *gitlib.Repository, name string) {
	remote, err := repo.Remote(s.remoteName)
	if err != nil {
		return
	}
	if err := remote.FetchContext(ctx, &gitlib.FetchOptions{}); err != nil &&
		!errors.Is(err, gitlib.NoErrAlreadyUpToDate) {
		s.logger.Warn("fetch before branch resolution failed", "repo", name, "err", err)
	}
}

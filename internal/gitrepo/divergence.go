package gitrepo

import (
	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Divergence returns the commit counts unique to each side of branch's
// tracking relationship: ahead is reachable from the branch but not its
// tracking reference, behind the reverse. (0, 0) when no tracking
// reference is set. Divergence is advisory; traversal failures degrade to
// (0, 0) instead of propagating.
func (s *Service) Divergence(name, branch string) (ahead, behind int, err error) {
	unlock, ok := s.locks.tryRLock(name)
	if !ok {
		return 0, 0, errBusy(name)
	}
	defer unlock()

	repo, _, err := s.open(name)
	if err != nil {
		return 0, 0, err
	}
	tracking := s.trackingName(repo, branch)
	if tracking == "" {
		return 0, 0, nil
	}
	localRef, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return 0, 0, nil
	}
	remoteRef, err := repo.Reference(plumbing.ReferenceName("refs/remotes/"+tracking), true)
	if err != nil {
		return 0, 0, nil
	}
	ahead, behind = aheadBehind(repo, localRef.Hash(), remoteRef.Hash())
	return ahead, behind, nil
}

// aheadBehind counts commits reachable from exactly one of the two tips.
// The history walk never mutates repository state; any failure yields
// (0, 0).
func aheadBehind(repo *gitlib.Repository, localHash, remoteHash plumbing.Hash) (int, int) {
	if localHash == remoteHash {
		return 0, 0
	}
	localCommit, err := repo.CommitObject(localHash)
	if err != nil {
		return 0, 0
	}
	remoteCommit, err := repo.CommitObject(remoteHash)
	if err != nil {
		return 0, 0
	}
	bases, err := localCommit.MergeBase(remoteCommit)
	if err != nil {
		return 0, 0
	}
	stop := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		stop = append(stop, base.Hash)
	}
	return countExclusive(localCommit, stop), countExclusive(remoteCommit, stop)
}

// countExclusive counts commits reachable from tip, excluding the stop
// hashes and their ancestors.
func countExclusive(tip *object.Commit, stop []plumbing.Hash) int {
	iter := object.NewCommitPreorderIter(tip, nil, stop)
	defer iter.Close()
	count := 0
	_ = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	return count
}

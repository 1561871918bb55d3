// Package git resolves the provenance of a config tree: which Git
// repository, commit and branch the files being parsed came from, and
// whether the working tree carries uncommitted edits. Config files are
// usually versioned next to the services they tune, so render and serve
// surfaces report this alongside resolved values.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Provenance describes the repository state a config path belongs to.
type Provenance struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name
	Branch string
	// Tags lists the tags pointing at the current commit
	Tags []string
	// Dirty indicates uncommitted changes in the working tree
	Dirty bool
}

// Describe resolves the provenance of the repository that path belongs
// to, searching upwards for the enclosing .git directory. A path
// outside any repository is an error the caller may treat as
// "unversioned config" rather than fatal.
func Describe(path string) (*Provenance, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for repository at %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for repository at %q: %w", path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for repository at %q: %w", path, err)
	}

	// Collect tags pointing at HEAD
	var tags []string
	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		revHash, err := repo.ResolveRevision(plumbing.Revision(ref.Name()))
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", ref.Name().Short(), err)
		}
		if *revHash == headRef.Hash() {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over tags: %w", err)
	}

	return &Provenance{
		CommitHash: headRef.Hash().String(),
		Branch:     headRef.Name().Short(),
		Tags:       tags,
		Dirty:      !status.IsClean(),
	}, nil
}

// Summary renders the provenance as a single human-readable line, e.g.
// "3f2a91c (main, dirty)".
func (p *Provenance) Summary() string {
	short := p.CommitHash
	if len(short) > 7 {
		short = short[:7]
	}
	state := p.Branch
	if p.Dirty {
		state += ", dirty"
	}
	return fmt.Sprintf("%s (%s)", short, state)
}

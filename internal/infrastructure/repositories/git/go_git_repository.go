package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

const abbrevLength = 7

// GoGitRepository implements repositories.GitRepository on go-git. Adding
// submodules is not supported by go-git, so that operation shells out to the
// git binary.
type GoGitRepository struct{}

var _ repositories.GitRepository = (*GoGitRepository)(nil)

// NewGoGitRepository creates a new GoGitRepository.
func NewGoGitRepository() *GoGitRepository {
	return &GoGitRepository{}
}

// Clone clones url into dir with all submodules.
func (it *GoGitRepository) Clone(ctx context.Context, url, dir string) error {
	logger.Debugf("Cloning %s into %s", url, dir)

	//nolint:exhaustruct // remaining clone options keep their defaults
	_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:               url,
		RecurseSubmodules: gogit.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		return fmt.Errorf("git clone %s: %w", url, err)
	}
	return nil
}

// AddSubmodule runs "git submodule add <url> <name>" inside parentDir.
func (it *GoGitRepository) AddSubmodule(ctx context.Context, url, parentDir, name string) error {
	logger.Debugf("Adding submodule %s as %s in %s", url, name, parentDir)

	_, err := runGit(ctx, parentDir, "submodule", "add", url, name)
	return err
}

// Checkout detaches HEAD at revision, which may be a tag, a branch or a hash.
func (it *GoGitRepository) Checkout(_ context.Context, dir, revision string) error {
	repo, err := openRepository(dir)
	if err != nil {
		return err
	}

	hash, err := resolveCommit(repo, revision)
	if err != nil {
		return fmt.Errorf("git checkout %s: cannot resolve revision: %w", revision, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("git checkout %s: %w", revision, err)
	}

	//nolint:exhaustruct // a detached checkout only needs the hash
	if checkoutErr := worktree.Checkout(&gogit.CheckoutOptions{Hash: hash}); checkoutErr != nil {
		return fmt.Errorf("git checkout %s: %w", revision, checkoutErr)
	}
	return nil
}

// DescribeTags finds the tag nearest to HEAD by graph distance and renders it
// the way "git describe --tags" does: "<tag>" on the tagged commit itself,
// "<tag>-<count>-g<abbrev>" otherwise, where count is the number of commits
// reachable from HEAD but not from the tag.
func (it *GoGitRepository) DescribeTags(ctx context.Context, dir string) (string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", &entities.NoTagError{Path: dir}
		}
		return "", fmt.Errorf("git describe in %s: %w", dir, err)
	}

	tagged, err := taggedCommits(repo)
	if err != nil {
		return "", fmt.Errorf("git describe in %s: %w", dir, err)
	}
	if len(tagged) == 0 {
		return "", &entities.NoTagError{Path: dir}
	}

	target, name, err := nearestTaggedCommit(ctx, repo, head.Hash(), tagged)
	if err != nil {
		return "", fmt.Errorf("git describe in %s: %w", dir, err)
	}
	if name == "" {
		return "", &entities.NoTagError{Path: dir}
	}
	if target == head.Hash() {
		return name, nil
	}

	tagHistory, err := ancestry(ctx, repo, target, nil)
	if err != nil {
		return "", fmt.Errorf("git describe in %s: %w", dir, err)
	}
	ahead, err := ancestry(ctx, repo, head.Hash(), tagHistory)
	if err != nil {
		return "", fmt.Errorf("git describe in %s: %w", dir, err)
	}
	return fmt.Sprintf("%s-%d-g%s", name, len(ahead), head.Hash().String()[:abbrevLength]), nil
}

// Tags lists every tag name of the repository in dir.
func (it *GoGitRepository) Tags(_ context.Context, dir string) ([]string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return nil, err
	}

	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("git tag in %s: %w", dir, err)
	}

	var names []string
	if iterErr := refs.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	}); iterErr != nil {
		return nil, fmt.Errorf("git tag in %s: %w", dir, iterErr)
	}
	return names, nil
}

// nearestTaggedCommit walks the history breadth first from start and returns
// the first tagged commit met. Parents are visited in their recorded order, so
// on equal distance the first-parent side wins.
func nearestTaggedCommit(
	ctx context.Context,
	repo *gogit.Repository,
	start plumbing.Hash,
	tagged map[plumbing.Hash]string,
) (plumbing.Hash, string, error) {
	queue := []plumbing.Hash{start}
	seen := map[plumbing.Hash]bool{start: true}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return plumbing.ZeroHash, "", err
		}
		hash := queue[0]
		queue = queue[1:]

		if name, ok := tagged[hash]; ok {
			return hash, name, nil
		}

		parents, err := parentHashes(repo, hash)
		if err != nil {
			return plumbing.ZeroHash, "", err
		}
		for _, parent := range parents {
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return plumbing.ZeroHash, "", nil
}

// ancestry returns start and every commit reachable from it, without
// descending into commits contained in exclude.
func ancestry(
	ctx context.Context,
	repo *gogit.Repository,
	start plumbing.Hash,
	exclude map[plumbing.Hash]bool,
) (map[plumbing.Hash]bool, error) {
	visited := make(map[plumbing.Hash]bool)
	if exclude[start] {
		return visited, nil
	}
	stack := []plumbing.Hash{start}
	visited[start] = true
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hash := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		parents, err := parentHashes(repo, hash)
		if err != nil {
			return nil, err
		}
		for _, parent := range parents {
			if !visited[parent] && !exclude[parent] {
				visited[parent] = true
				stack = append(stack, parent)
			}
		}
	}
	return visited, nil
}

// parentHashes returns the parents of a commit. Missing objects (shallow
// clones) end the history there.
func parentHashes(repo *gogit.Repository, hash plumbing.Hash) ([]plumbing.Hash, error) {
	commit, err := repo.CommitObject(hash)
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return commit.ParentHashes, nil
}

func openRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &entities.NotFoundError{Paths: []string{dir}}
		}
		return nil, fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	return repo, nil
}

// resolveCommit resolves revision to a commit, preferring a tag of that name
// and peeling annotated tags.
func resolveCommit(repo *gogit.Repository, revision string) (plumbing.Hash, error) {
	if ref, err := repo.Tag(revision); err == nil {
		return peelTag(repo, ref)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}

// peelTag returns the commit a tag reference points at.
func peelTag(repo *gogit.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	annotated, err := repo.TagObject(ref.Hash())
	if err != nil {
		return ref.Hash(), nil //nolint:nilerr // lightweight tags point at the commit directly
	}
	commit, err := annotated.Commit()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return commit.Hash, nil
}

// taggedCommits maps each tagged commit to its tag name, peeling annotated
// tags. When a commit carries several tags the one with the highest version wins.
func taggedCommits(repo *gogit.Repository) (map[plumbing.Hash]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, err
	}

	tagged := make(map[plumbing.Hash]string)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		target, peelErr := peelTag(repo, ref)
		if peelErr != nil {
			return nil //nolint:nilerr // tags on trees or blobs cannot be described
		}

		name := ref.Name().Short()
		if existing, ok := tagged[target]; ok && !preferTag(name, existing) {
			return nil
		}
		tagged[target] = name
		return nil
	})
	return tagged, err
}

func preferTag(candidate, existing string) bool {
	candidateVer, candidateErr := entities.ParseTagVersion(candidate)
	existingVer, existingErr := entities.ParseTagVersion(existing)
	switch {
	case candidateErr == nil && existingErr == nil:
		return candidateVer.GreaterThan(existingVer)
	case candidateErr == nil:
		return true
	default:
		return false
	}
}

// runGit executes a git command in dir and returns its trimmed combined output.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err != nil {
		return output, fmt.Errorf("git %s: %w\nOutput:\n%s", strings.Join(args, " "), err, output)
	}
	return output, nil
}

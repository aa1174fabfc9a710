package repositories

import "context"

// GitRepository runs git operations against explicit directories. No
// implementation may change the process working directory.
type GitRepository interface {
	// Clone clones url into dir, recursing into submodules.
	Clone(ctx context.Context, url, dir string) error

	// AddSubmodule registers url as a submodule named name inside parentDir,
	// which must belong to an existing git work tree.
	AddSubmodule(ctx context.Context, url, parentDir, name string) error

	// Checkout moves the work tree in dir to revision (a tag or branch name).
	Checkout(ctx context.Context, dir, revision string) error

	// DescribeTags mirrors "git describe --tags" for HEAD in dir.
	DescribeTags(ctx context.Context, dir string) (string, error)

	// Tags lists the tag names of the repository in dir.
	Tags(ctx context.Context, dir string) ([]string, error)
}

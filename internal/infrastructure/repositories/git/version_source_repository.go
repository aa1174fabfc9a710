package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// VersionSourceRepository reads the checked out version from the nearest tag.
type VersionSourceRepository struct {
	git repositories.GitRepository
}

var _ repositories.VersionSourceRepository = (*VersionSourceRepository)(nil)

// NewVersionSourceRepository creates a version source backed by git.
func NewVersionSourceRepository(git repositories.GitRepository) *VersionSourceRepository {
	return &VersionSourceRepository{git: git}
}

// CurrentVersion parses the tag part of "git describe --tags" for dir.
func (it *VersionSourceRepository) CurrentVersion(ctx context.Context, dir string) (entities.Version, error) {
	description, err := it.git.DescribeTags(ctx, dir)
	if err != nil {
		return entities.Version{}, err
	}

	tag, _, _ := strings.Cut(description, "-")
	version, err := entities.ParseTagVersion(tag)
	if err != nil {
		return entities.Version{}, fmt.Errorf("unreadable version tag in %s: %w", dir, err)
	}
	return version, nil
}

package repositories

import (
	"context"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// VersionSourceRepository reports the version currently checked out in a directory.
// It fails with *entities.NotFoundError when dir holds no repository and with
// *entities.NoTagError when no version tag is reachable from HEAD.
type VersionSourceRepository interface {
	CurrentVersion(ctx context.Context, dir string) (entities.Version, error)
}

package file

import (
	"fmt"
	"os"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// ReadmeDeclarationRepository reads dependency declarations from files on disk.
type ReadmeDeclarationRepository struct{}

var _ repositories.DeclarationRepository = (*ReadmeDeclarationRepository)(nil)

// NewReadmeDeclarationRepository creates a new ReadmeDeclarationRepository.
func NewReadmeDeclarationRepository() *ReadmeDeclarationRepository {
	return &ReadmeDeclarationRepository{}
}

// ReadLines returns the lines of the file at path.
func (it *ReadmeDeclarationRepository) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return entities.ReadLines(f)
}

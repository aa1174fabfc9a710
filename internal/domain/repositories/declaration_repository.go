package repositories

// DeclarationRepository is the line source for dependency declarations.
type DeclarationRepository interface {
	// ReadLines returns the lines of the document at path, without terminators.
	ReadLines(path string) ([]string, error)
}

package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/filesystem_mock.go -package=mock

// FileSystem is the read-only view of the disk used during resolution.
type FileSystem interface {
	// Exists reports whether path exists. Any stat failure counts as
	// absence.
	Exists(path string) bool

	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)
}

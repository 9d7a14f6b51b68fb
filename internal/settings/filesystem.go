package settings

import "os"

// OSFileSystem is the [FileSystem] backed by the host operating system.
type OSFileSystem struct{}

// Exists reports whether path exists. An empty path never exists.
func (OSFileSystem) Exists(path string) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

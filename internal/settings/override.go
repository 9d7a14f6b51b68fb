package settings

import "fmt"

// LoadOverride reads the final override file at path. The existence check
// comes first: an empty path wraps [ErrPathAbsent] and a missing file wraps
// [ErrResourceNotFound]. An empty or null document yields a nil Fragment and
// no error.
func LoadOverride(fs FileSystem, path string) (Fragment, error) {
	doc, err := loadDocument(fs, path)
	if err != nil {
		return nil, fmt.Errorf("override config: %w", err)
	}

	return doc, nil
}

package settings

import (
	"fmt"
)

// LoadProject reads the project configuration file at path and returns the
// admin users of the section named envName.
//
// The file maps runtime environment names to blocks of the form
// {admin: {users: [...]}}. A section without admin or without admin.users
// yields an empty list. Failures wrap [ErrPathAbsent],
// [ErrResourceNotFound], [ErrResourceMalformed] or [ErrSectionNotFound].
func LoadProject(fs FileSystem, path, envName string) ([]UserRecord, error) {
	doc, err := loadDocument(fs, path)
	if err != nil {
		return nil, fmt.Errorf("project config: %w", err)
	}

	section, ok := asMap(doc[envName])
	if envName == "" || !ok {
		return nil, fmt.Errorf("project config %s: %w: %q", path, ErrSectionNotFound, envName)
	}

	admin, ok := section["admin"]
	if !ok || admin == nil {
		return []UserRecord{}, nil
	}

	adminMap, ok := asMap(admin)
	if !ok {
		return nil, fmt.Errorf("project config %s: %w: admin must be a mapping, got %T", path, ErrResourceMalformed, admin)
	}

	users, err := usersFromValue(adminMap["users"])
	if err != nil {
		return nil, fmt.Errorf("project config %s: %w: %w", path, ErrResourceMalformed, err)
	}

	return users, nil
}

// loadDocument reads and decodes the file at path.
func loadDocument(fs FileSystem, path string) (Fragment, error) {
	if path == "" {
		return nil, ErrPathAbsent
	}

	if !fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, path, err)
	}

	doc, err := decodeFragment(FormatOf(path), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceMalformed, path, err)
	}

	return doc, nil
}
